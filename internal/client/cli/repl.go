package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	GoToPage(ctx context.Context, arg string) error
	Search(ctx context.Context, arg string) error
	FilterCompany(ctx context.Context, arg string) error
	SortEmail(ctx context.Context, arg string) error
	View(ctx context.Context, arg string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	ShowLog(ctx context.Context) error
	ClearLog(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	Login(ctx context.Context, arg string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the userdesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	list             — render the current page
//	next | prev      — pagination
//	page <n>         — jump to page n
//	search <q>       — filter by name/username substring (empty resets)
//	company <name>   — filter by exact company name ("All" resets)
//	sort asc|desc    — sort the view by email
//	view <id>        — show one user's details
//	add              — create a user (interactive form)
//	edit <id>        — edit a user (interactive form)
//	delete <id>      — delete a user
//	log | clearlog   — show / clear the activity log
//	theme            — toggle dark mode
//	login <id>       — set the logged-in user from the directory
//	logout           — unset the logged-in user
//	help             — show available commands
//	exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ud> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, next, prev, page <n>, search <q>, company <name>, sort asc|desc, view <id>, add, edit <id>, delete <id>, log, clearlog, theme, login <id>, logout, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "next", "n":
			_ = a.NextPage(ctx)

		case "prev", "p":
			_ = a.PrevPage(ctx)

		case "page":
			_ = a.GoToPage(ctx, arg)

		case "search":
			_ = a.Search(ctx, arg)

		case "company":
			_ = a.FilterCompany(ctx, arg)

		case "sort":
			_ = a.SortEmail(ctx, arg)

		case "view", "show":
			_ = a.View(ctx, arg)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete", "del":
			_ = a.Delete(ctx, arg)

		case "log":
			_ = a.ShowLog(ctx)

		case "clearlog":
			_ = a.ClearLog(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "login":
			_ = a.Login(ctx, arg)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
