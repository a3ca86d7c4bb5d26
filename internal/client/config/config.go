package config

import "time"

// Config holds runtime settings for the Citas CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, without trailing slash.
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - DataDir: directory for local state (cache DB, avatar sandbox).
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	DataDir             string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DataDir = "citas-data"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
