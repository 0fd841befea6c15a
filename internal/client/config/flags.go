package config

import (
	"flag"
	"os"
	"time"

	"github.com/userdesk-dev/userdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the user directory (default from Config)
//	-p int      page size for the list view
//	-f int      cache freshness window in seconds
//	-t int      request timeout in seconds
//	-s string   state directory for the persisted state file
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-f", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DirectoryBaseURL, "a", cfg.DirectoryBaseURL, "base URL of the user directory")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size for the list view")
	freshness := fs.Int("f", int(cfg.CacheFreshness.Seconds()), "cache freshness window (in seconds)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StateDir, "s", cfg.StateDir, "state directory for the persisted state file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CacheFreshness = time.Duration(*freshness) * time.Second
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
