package cli

import (
	"context"
	"fmt"
)

// ShowLog prints the activity log, newest first.
func (a *App) ShowLog(ctx context.Context) error {
	entries := a.state.Activities()
	if len(entries) == 0 {
		printlnFn("Activity log is empty.")
		return nil
	}

	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s  %-24s %s",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.Message))
	}
	return nil
}

// ClearLog empties the activity log.
func (a *App) ClearLog(ctx context.Context) error {
	a.state.ClearActivity()
	printlnFn("Activity log cleared.")
	return nil
}

// ToggleTheme flips the persisted dark-mode flag.
func (a *App) ToggleTheme(ctx context.Context) error {
	if a.state.ToggleDark() {
		printlnFn("Dark mode on.")
	} else {
		printlnFn("Dark mode off.")
	}
	return nil
}
