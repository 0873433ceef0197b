package config

import "fmt"

// InterchangeConfig controls schedule file parsing.
type InterchangeConfig struct {
	// Strict fails the whole batch when any file fails to parse. The default
	// is lenient: a bad file is reported and the rest of the batch loads.
	Strict bool `json:"strict"`
	// Delimiter selects the export field separator: "auto" picks by file
	// extension, "tab" and "comma" force one.
	Delimiter string `json:"delimiter"`
}

// SetDefaults applies sane defaults.
func (c *InterchangeConfig) SetDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = "auto"
	}
}

// Validate checks the delimiter selector.
func (c InterchangeConfig) Validate() error {
	switch c.Delimiter {
	case "auto", "tab", "comma":
		return nil
	default:
		return fmt.Errorf("unknown delimiter %q", c.Delimiter)
	}
}

// DelimiterFor resolves the delimiter for a target path.
func (c InterchangeConfig) DelimiterFor(auto rune) rune {
	switch c.Delimiter {
	case "tab":
		return '\t'
	case "comma":
		return ','
	default:
		return auto
	}
}
