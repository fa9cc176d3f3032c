package config

import "time"

// DefaultRequestTimeout is used when no positive timeout is configured.
const DefaultRequestTimeout = 15 * time.Second

// Config holds runtime settings for the Momentum CLI.
//
// Fields:
//   - ServerBaseURL: base address of the Momentum REST API, e.g. http://localhost:5000/api.
//   - RequestTimeout: upper bound for a single request to the service.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string        `env:"MOMENTUM_SERVER_URL"`
	RequestTimeout time.Duration `env:"MOMENTUM_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"MOMENTUM_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. A zero or negative timeout from any
// source falls back to DefaultRequestTimeout; the transport treats zero as
// "no timeout".
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
}
