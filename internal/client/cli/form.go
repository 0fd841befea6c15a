package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/userdesk-dev/userdesk/internal/client/models"
	"github.com/userdesk-dev/userdesk/internal/client/services"
)

// getSimpleText and getOptionalText are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText

// readForm prompts for the form fields, prefilled from current when editing.
func (a *App) readForm(current models.UserForm) (models.UserForm, error) {
	form := current

	name, err := getOptionalText(a.reader, "Name", current.Name, writerOut)
	if err != nil {
		return form, err
	}
	form.Name = name

	email, err := getOptionalText(a.reader, "Email", current.Email, writerOut)
	if err != nil {
		return form, err
	}
	form.Email = email

	phone, err := getOptionalText(a.reader, "Phone (optional)", current.Phone, writerOut)
	if err != nil {
		return form, err
	}
	form.Phone = phone

	company, err := getOptionalText(a.reader, "Company (optional)", current.Company, writerOut)
	if err != nil {
		return form, err
	}
	form.Company = company

	return form, nil
}

// Add collects a new user form and saves it through the coordinator.
func (a *App) Add(ctx context.Context) error {
	form, err := a.readForm(models.UserForm{})
	if err != nil {
		return err
	}
	return a.save(ctx, form)
}

// Edit prefills the form from the record on the current page and saves.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		printlnFn("Warning: 'edit' needs a numeric user id, e.g. 'edit 3'")
		return nil
	}

	snap, err := a.users.List(ctx, a.page, a.config.PageSize)
	if err != nil {
		printlnFn("Could not load users:", err.Error())
		return err
	}

	current := models.UserForm{ID: id}
	for _, u := range snap.Items {
		if u.ID == id {
			current.Name = u.Name
			current.Email = u.Email
			current.Phone = u.Phone
			current.Company = u.CompanyName()
			break
		}
	}

	form, err := a.readForm(current)
	if err != nil {
		return err
	}
	return a.save(ctx, form)
}

func (a *App) save(ctx context.Context, form models.UserForm) error {
	saved, err := a.users.Save(ctx, a.page, a.config.PageSize, form)
	if err != nil {
		if services.IsValidation(err) {
			// Inline form error, never sent to the activity log.
			printlnFn("Invalid form:", err.Error())
			return nil
		}
		printlnFn("Save failed (changes rolled back):", err.Error())
		return nil
	}

	printlnFn("Saved user", saved.Name, "with id", saved.ID)
	return a.List(ctx)
}

// Delete removes a user from the current page.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		printlnFn("Warning: 'delete' needs a numeric user id, e.g. 'delete 3'")
		return nil
	}

	a.users.Delete(ctx, a.page, a.config.PageSize, id)
	return a.List(ctx)
}
