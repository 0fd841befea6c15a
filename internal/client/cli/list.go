package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

// terminalWidth is a test seam around term.GetSize.
var terminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 100
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 100
	}
	return w
}

// applyView derives the rendered list from a page snapshot: search filters by
// name or username substring (case-insensitive), the company filter matches
// exactly ("All" disables it), and the result is sorted by email. The input
// slice is never modified.
func applyView(items []models.User, query, company string, dir emailSort) []models.User {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.User, 0, len(items))
	for _, u := range items {
		matchesName := strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Username), q)
		matchesCompany := company == companyAll ||
			strings.EqualFold(u.CompanyName(), company)
		if matchesName && matchesCompany {
			out = append(out, u)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Email), strings.ToLower(out[j].Email)
		if dir == sortDesc {
			return a > b
		}
		return a < b
	})

	return out
}

// companiesOf collects the distinct company names on the page, sorted,
// with the "All" sentinel first.
func companiesOf(items []models.User) []string {
	seen := make(map[string]struct{})
	for _, u := range items {
		if name := u.CompanyName(); name != "" {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen)+1)
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{companyAll}, names...)
}

// List renders the current page through the view controls. The page is
// clamped to [1, totalPages] before rendering; when the page count is not
// known yet, the first fetch learns it and an out-of-range page is re-read
// after clamping so the table and the status line always agree.
func (a *App) List(ctx context.Context) error {
	if a.page < 1 {
		a.page = 1
	}
	if a.totalPages > 0 && a.page > a.totalPages {
		a.page = a.totalPages
	}

	snap, err := a.users.List(ctx, a.page, a.config.PageSize)
	if err != nil {
		// Read errors surface inline in place of the data.
		printlnFn("Could not load users:", err.Error())
		return err
	}
	if a.page > snap.TotalPages {
		a.page = snap.TotalPages
		snap, err = a.users.List(ctx, a.page, a.config.PageSize)
		if err != nil {
			printlnFn("Could not load users:", err.Error())
			return err
		}
	}
	a.totalPages = snap.TotalPages

	view := applyView(snap.Items, a.query, a.companyFilter, a.emailSort)
	a.renderTable(view)

	printlnFn(fmt.Sprintf("Page %d of %d (%d users total, sort: email %s, company: %s)",
		a.page, snap.TotalPages, snap.Total, a.emailSort, a.companyFilter))
	if a.query != "" {
		printlnFn("Search:", a.query)
	}
	return nil
}

func (a *App) renderTable(view []models.User) {
	if len(view) == 0 {
		printlnFn("No users match the current view.")
		return
	}

	nameWidth := 24
	if terminalWidth() < 90 {
		nameWidth = 16
	}

	printlnFn(fmt.Sprintf("%-5s %-*s %-28s %-18s", "ID", nameWidth, "NAME", "EMAIL", "COMPANY"))
	for _, u := range view {
		printlnFn(fmt.Sprintf("%-5d %-*s %-28s %-18s",
			u.ID, nameWidth, truncate(u.Name, nameWidth), truncate(u.Email, 28), truncate(u.CompanyName(), 18)))
	}
}

// truncate counts runes, not bytes, so a multi-byte name is never cut
// mid-character.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}

// NextPage advances the page (clamped) and re-renders.
func (a *App) NextPage(ctx context.Context) error {
	a.page++
	return a.List(ctx)
}

// PrevPage goes one page back (clamped at 1) and re-renders.
func (a *App) PrevPage(ctx context.Context) error {
	if a.page > 1 {
		a.page--
	}
	return a.List(ctx)
}

// GoToPage jumps to the given page number.
func (a *App) GoToPage(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		printlnFn("Usage: page <n> — n must be a positive number")
		return nil
	}
	a.page = n
	return a.List(ctx)
}

// Search sets the name/username filter; an empty argument clears it.
func (a *App) Search(ctx context.Context, arg string) error {
	a.query = strings.TrimSpace(arg)
	return a.List(ctx)
}

// FilterCompany sets the company filter; "All" or empty clears it.
func (a *App) FilterCompany(ctx context.Context, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		arg = companyAll
	}
	a.companyFilter = arg

	snap, err := a.users.List(ctx, a.page, a.config.PageSize)
	if err == nil {
		printlnFn("Companies on this page:", strings.Join(companiesOf(snap.Items), ", "))
	}
	return a.List(ctx)
}

// SortEmail switches the email sort direction ("asc" or "desc").
func (a *App) SortEmail(ctx context.Context, arg string) error {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "asc":
		a.emailSort = sortAsc
	case "desc":
		a.emailSort = sortDesc
	default:
		printlnFn("Usage: sort asc|desc")
		return nil
	}
	return a.List(ctx)
}
