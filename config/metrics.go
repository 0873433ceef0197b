package config

import "fmt"

// MetricsConfig defines settings for the optional Prometheus endpoint.
type MetricsConfig struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	PrometheusPort    int  `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == 0 {
		c.PrometheusPort = 2112
	}
}

// Validate checks the port range.
func (c MetricsConfig) Validate() error {
	if c.PrometheusPort < 1 || c.PrometheusPort > 65535 {
		return fmt.Errorf("invalid prometheus port %d", c.PrometheusPort)
	}
	return nil
}
