package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/userdesk-dev/userdesk/internal/flagx"
	"github.com/userdesk-dev/userdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "2m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DirectoryBaseURL string         `json:"directory_base_url"`
	PageSize         int            `json:"page_size"`
	CacheFreshness   timex.Duration `json:"cache_freshness"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	StateDir         string         `json:"state_dir"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags (see flagx.JsonConfigFlags). With no file given it
// returns without touching cfg. Read or unmarshal errors panic; the caller
// may recover if desired.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DirectoryBaseURL != "" {
		cfg.DirectoryBaseURL = jc.DirectoryBaseURL
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.CacheFreshness.Duration > 0 {
		cfg.CacheFreshness = time.Duration(jc.CacheFreshness.Duration)
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StateDir != "" {
		cfg.StateDir = jc.StateDir
	}
}
