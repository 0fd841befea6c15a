// Package config loads runtime configuration for the userdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote user directory
//	-p int      page size for the list view
//	-f int      cache freshness window (seconds)
//	-t int      request timeout (seconds)
//	-s string   state directory for the persisted state file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "2m" or integer nanoseconds:
//
//	{
//	  "directory_base_url": "https://jsonplaceholder.typicode.com",
//	  "page_size": 6,
//	  "cache_freshness": "2m",
//	  "request_timeout": "10s",
//	  "state_dir": ""
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
