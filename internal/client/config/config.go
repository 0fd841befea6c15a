package config

import "time"

// Config holds runtime settings for the userdesk CLI.
//
// Fields:
//   - DirectoryBaseURL: base URL of the remote user directory.
//   - PageSize: records per page in the list view.
//   - CacheFreshness: how long a cached page is served without revalidation.
//   - RequestTimeout: per-request HTTP timeout.
//   - StateDir: directory of the persisted state file ("" = user config dir).
type Config struct {
	DirectoryBaseURL string
	PageSize         int
	CacheFreshness   time.Duration
	RequestTimeout   time.Duration
	StateDir         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DirectoryBaseURL = "https://jsonplaceholder.typicode.com"
	c.PageSize = 6
	c.CacheFreshness = 2 * time.Minute
	c.RequestTimeout = 10 * time.Second
	c.StateDir = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
