package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := fmt.Sprintf("p%d", a.page)
	if u := a.state.LoggedInUser(); u != nil {
		s = u.Username + " " + s
	}
	if a.state.Dark() {
		s += " dark"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root prints the welcome banner and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to userdesk (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
