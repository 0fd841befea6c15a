package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_LevelsAndAttributes(t *testing.T) {
	log, buf := captureLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "cache probe", "page", 1)
	log.Info(ctx, "loading users", "perPage", 6)
	log.Warn(ctx, "background refetch failed", "page", 2)
	log.Error(ctx, "save failed, rolled back", "name", "Ada")

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "cache probe", "page=1"},
		{"INFO", "loading users", "perPage=6"},
		{"WARN", "background refetch failed", "page=2"},
		{"ERROR", "save failed, rolled back", "name=Ada"},
	}

	for _, tt := range tests {
		assert.Contains(t, out, "level="+tt.level)
		assert.Contains(t, out, "msg="+quoteIfNeeded(tt.msg))
		assert.Contains(t, out, tt.attr)
	}
}

// The text handler quotes values containing spaces.
func quoteIfNeeded(s string) string {
	for _, r := range s {
		if r == ' ' {
			return `"` + s + `"`
		}
	}
	return s
}

func TestSlogLogger_WithCarriesAttributes(t *testing.T) {
	log, buf := captureLogger(t)

	child := log.With("component", "users", "session", "abc123")
	child.Info(context.Background(), "listing", "page", 3)

	out := buf.String()
	assert.Contains(t, out, "component=users")
	assert.Contains(t, out, "session=abc123")
	assert.Contains(t, out, "page=3")

	// The parent is unaffected.
	buf.Reset()
	log.Info(context.Background(), "listing")
	assert.NotContains(t, buf.String(), "component=users")
}

func TestSlogLogger_AcceptsAnyContext(t *testing.T) {
	log, _ := captureLogger(t)

	for _, ctx := range []context.Context{context.Background(), context.TODO()} {
		log.Debug(ctx, "ok")
		log.Info(ctx, "ok")
		log.Warn(ctx, "ok")
		log.Error(ctx, "ok")
	}
}
