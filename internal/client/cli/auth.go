package cli

import (
	"context"
	"strconv"
	"strings"
)

// Login resolves a directory record by id and remembers it as the current
// user. There is no credential exchange; the fixture directory has none.
func (a *App) Login(ctx context.Context, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		var err error
		arg, err = getSimpleText(a.reader, "Enter your user id", writerOut)
		if err != nil {
			return err
		}
	}

	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		printlnFn("Warning: 'login' needs a numeric user id, e.g. 'login 3'")
		return nil
	}

	u, err := a.users.Get(ctx, id)
	if err != nil {
		printlnFn("Could not log in:", err.Error())
		return err
	}

	a.state.SetLoggedInUser(u)
	printlnFn("Logged in as", u.Name)
	return nil
}

// Logout unsets the current user.
func (a *App) Logout(ctx context.Context) error {
	a.state.SetLoggedInUser(nil)
	printlnFn("Logged out.")
	return nil
}
