package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Logging     LoggingConfig     `json:"logging"`
	Interchange InterchangeConfig `json:"interchange"`
	Metrics     MetricsConfig     `json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Logging.SetDefaults()
	cfg.Interchange.SetDefaults()
	cfg.Metrics.SetDefaults()
	return &cfg
}

// Load reads the configuration from path, with MG_-prefixed environment
// variables taking precedence. An empty path skips the file, so the CLI works
// without one; environment overrides still apply on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Environment overrides apply with or without a file
	if err := k.Load(env.Provider("MG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "mg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Interchange.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Interchange.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
