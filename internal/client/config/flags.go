package config

import (
	"flag"
	"os"
	"time"

	"github.com/dreamcatcher/dreamcatcher-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend root URL (default from Config)
//	-d string   data directory for the credential store
//	-i int      AI status probe interval in seconds
//
// os.Args is filtered to only the flags handled here (flagx.FilterArgs) so
// the -c/-config flags owned by the JSON source pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend root URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	interval := fs.Int("i", int(cfg.AIStatusInterval.Seconds()), "AI status probe interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AIStatusInterval = time.Duration(*interval) * time.Second
}
