package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `logging:
  level: "debug"
interchange:
  strict: true
  delimiter: "tab"
metrics:
  prometheus_enabled: true
  prometheus_port: 9900
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"logging.level", cfg.Logging.Level, "debug"},
		{"interchange.strict", cfg.Interchange.Strict, true},
		{"interchange.delimiter", cfg.Interchange.Delimiter, "tab"},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_port", cfg.Metrics.PrometheusPort, 9900},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %s, want info", cfg.Logging.Level)
	}
	if cfg.Interchange.Delimiter != "auto" {
		t.Errorf("delimiter = %s, want auto", cfg.Interchange.Delimiter)
	}
	if cfg.Interchange.Strict {
		t.Errorf("strict must default to false")
	}
	if cfg.Metrics.PrometheusPort != 2112 {
		t.Errorf("port = %d, want 2112", cfg.Metrics.PrometheusPort)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MG_LOGGING__LEVEL", "warn")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env override ignored: %s", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrideWithoutFile(t *testing.T) {
	t.Setenv("MG_LOGGING__LEVEL", "error")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("env override ignored without a config file: %s", cfg.Logging.Level)
	}
	// Untouched sections still pick up defaults.
	if cfg.Interchange.Delimiter != "auto" {
		t.Errorf("delimiter = %s, want auto", cfg.Interchange.Delimiter)
	}
}

func TestLoadBadExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestValidateErrors(t *testing.T) {
	lc := LoggingConfig{Level: "loud"}
	if err := lc.Validate(); err == nil {
		t.Errorf("expected log level error")
	}
	ic := InterchangeConfig{Delimiter: "pipe"}
	if err := ic.Validate(); err == nil {
		t.Errorf("expected delimiter error")
	}
	mc := MetricsConfig{PrometheusPort: -1}
	if err := mc.Validate(); err == nil {
		t.Errorf("expected port error")
	}
}

func TestDelimiterFor(t *testing.T) {
	auto := InterchangeConfig{Delimiter: "auto"}
	if auto.DelimiterFor('\t') != '\t' {
		t.Errorf("auto must pass through")
	}
	tab := InterchangeConfig{Delimiter: "tab"}
	if tab.DelimiterFor(',') != '\t' {
		t.Errorf("tab must force tab")
	}
	comma := InterchangeConfig{Delimiter: "comma"}
	if comma.DelimiterFor('\t') != ',' {
		t.Errorf("comma must force comma")
	}
}
