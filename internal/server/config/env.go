package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays GOPHGRAM_* variables. Unset variables keep the current
// value. It panics on malformed values.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
