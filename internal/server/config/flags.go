package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/diary/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   database DSN or SQLite path
//	-r string   database driver: sqlite, pgx or memory
//	-l string   log level
//	-f string   log format: json, text or human
//
// The arguments are filtered with flagx.FilterArgs first, so -c/-config and
// -env handled by the other loaders do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN or SQLite path")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (sqlite, pgx, memory)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json, text, human)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
