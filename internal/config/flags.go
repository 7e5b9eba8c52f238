package config

import (
	"flag"
	"os"

	"github.com/avolkovs/menuboard/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     bind address of the HTTP API server
//	-d string     path of the local SQLite database
//	-k string     secret key for signing session tokens
//	-t duration   session token lifetime (e.g. 24h)
//
// os.Args is filtered down to the flags handled here (flagx.FilterArgs)
// so this parser does not trip over flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port for the API server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key for session tokens")
	fs.DurationVar(&cfg.TokenValidityDuration, "t", cfg.TokenValidityDuration, "session token lifetime")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
