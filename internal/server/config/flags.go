package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/flagx"
)

// parseFlags overlays the short command-line flags:
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-m string   metrics HTTP bind address, empty disables it
//	-d string   PostgreSQL DSN, empty keeps accounts in memory
//	-r string   Redis URL, empty keeps sessions in memory
//	-s string   JWT HMAC secret
//	-t int      session validity, minutes
//	-l string   log level
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-r", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*validity) * time.Minute
		}
	})
}
