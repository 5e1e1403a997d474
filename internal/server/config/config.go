// Package config loads the server configuration. Sources are applied in
// order, each overriding the previous one: built-in defaults, an optional
// JSON file (-c/-config), GOPHGRAM_* environment variables and finally
// command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GophGram server.
//
// An empty DatabaseDSN keeps accounts in memory and an empty RedisURL keeps
// sessions in memory, which is enough for local development and tests. An
// empty OtelEndpoint disables trace export.
type Config struct {
	EndpointAddrGRPC        string        `env:"GOPHGRAM_GRPC_ADDR"`
	MetricsAddr             string        `env:"GOPHGRAM_METRICS_ADDR"`
	DatabaseDSN             string        `env:"GOPHGRAM_DATABASE_DSN"`
	RedisURL                string        `env:"GOPHGRAM_REDIS_URL"`
	SecretKey               string        `env:"GOPHGRAM_SECRET_KEY"`
	SessionValidityDuration time.Duration `env:"GOPHGRAM_SESSION_VALIDITY"`
	LogLevel                string        `env:"GOPHGRAM_LOG_LEVEL"`
	OtelEndpoint            string        `env:"GOPHGRAM_OTEL_ENDPOINT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.DatabaseDSN = ""
	c.RedisURL = ""
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 30 * time.Minute
	c.LogLevel = "info"
	c.OtelEndpoint = ""
}

// LoadConfig builds the Config from all sources using the process arguments
// and environment. It panics on malformed input.
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
