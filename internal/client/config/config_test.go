package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.DirectoryBaseURL)
	assert.Equal(t, 6, c.PageSize)
	assert.Equal(t, 2*time.Minute, c.CacheFreshness)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Empty(t, c.StateDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.DirectoryBaseURL)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.CacheFreshness)
}
