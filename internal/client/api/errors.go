package api

import (
	"fmt"

	"github.com/userdesk-dev/userdesk/internal/common"
)

// Sentinels re-exported so callers of this package match directory failures
// without importing common directly.
var (
	ErrUnavailable = common.ErrUnavailable
	ErrNotFound    = common.ErrNotFound
)

// StatusError reports a non-2xx response from the directory.
type StatusError struct {
	Code   int
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// Is lets errors.Is match 404 responses against ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == 404
}
