// Package config loads runtime configuration for the GophGram CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. GOPHGRAM_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-f string   path of the local SQLite database
//	-t int      per-step timeout of an auth attempt (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so timeouts can be either strings
// like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "gophgram.db",
//	  "step_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "log_level": "warn"
//	}
package config
