package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GophGram CLI.
type Config struct {
	ServerEndpointAddr string        `env:"GOPHGRAM_SERVER_ADDR"`
	DatabasePath       string        `env:"GOPHGRAM_CLIENT_DB"`
	StepTimeout        time.Duration `env:"GOPHGRAM_STEP_TIMEOUT"`
	// OnlineCheckInterval is how often the CLI pings the server to show
	// whether it is reachable. Zero disables the check.
	OnlineCheckInterval time.Duration `env:"GOPHGRAM_ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"GOPHGRAM_CLIENT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "gophgram.db"
	c.StepTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
