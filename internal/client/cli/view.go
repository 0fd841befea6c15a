package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// View shows one user's full record. An invalid or missing id prints a
// visible warning and performs no fetch.
func (a *App) View(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		printlnFn("Warning: 'view' needs a numeric user id, e.g. 'view 3'")
		return nil
	}

	u, err := a.users.Get(ctx, id)
	if err != nil {
		printlnFn("Could not load user:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (%s)", u.ID, u.Name, u.Username))
	printlnFn("Email:  ", u.Email)
	if u.Phone != "" {
		printlnFn("Phone:  ", u.Phone)
	}
	if u.Website != "" {
		printlnFn("Website:", u.Website)
	}
	if u.Company != nil {
		printlnFn("Company:", u.Company.Name)
	}
	if u.Address != nil {
		printlnFn("Address:", strings.TrimSpace(fmt.Sprintf("%s %s, %s %s",
			u.Address.Street, u.Address.Suite, u.Address.City, u.Address.Zipcode)))
	}
	return nil
}
