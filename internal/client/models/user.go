// Package models defines the user-directory record types shared by the
// cache, the services layer and the CLI.
package models

import "strings"

// Address is the structured postal address carried by the directory.
type Address struct {
	Street  string `json:"street,omitempty"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// Company is the employer block carried by the directory.
type Company struct {
	Name        string `json:"name,omitempty"`
	CatchPhrase string `json:"catchPhrase,omitempty"`
	BS          string `json:"bs,omitempty"`
}

// User is one directory record. ID is server-assigned; an in-flight created
// record carries a temporary locally-generated id until the server confirms.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// CompanyName returns the company name or "" when no company is set.
func (u User) CompanyName() string {
	if u.Company == nil {
		return ""
	}
	return u.Company.Name
}

// UserForm is the payload collected by the add/edit commands.
// ID == 0 selects create, anything else selects update.
type UserForm struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// Record synthesizes the optimistic User for this form. The username defaults
// to the email local part, matching what the directory does for new records.
func (f UserForm) Record(id int) User {
	u := User{
		ID:       id,
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Username: strings.SplitN(f.Email, "@", 2)[0],
	}
	if f.Company != "" {
		u.Company = &Company{Name: f.Company}
	}
	return u
}
