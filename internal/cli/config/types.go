package config

// Default configuration values.
const (
	DefaultStateFile       = ".runboard/metadata.db"
	DefaultOutput          = "table"
	DefaultPort            = 8418
	DefaultMetricsProperty = "confidenceMetrics"
)

// Config holds the resolved runboard configuration.
type Config struct {
	StatePath string `koanf:"state_path"`
	// Output selects the CLI rendering format: table, json, csv, markdown.
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
	// MetricsProperty names the structured custom property that marks an
	// artifact as carrying curve metric data.
	MetricsProperty string    `koanf:"metrics_property"`
	UI              *UIConfig `koanf:"ui"`
}

// UIConfig holds API server configuration.
type UIConfig struct {
	Port int `koanf:"port"`
}

// Port returns the configured API port, falling back to the default.
func (c *Config) Port() int {
	if c.UI != nil && c.UI.Port != 0 {
		return c.UI.Port
	}
	return DefaultPort
}
