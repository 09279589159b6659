// Package huhforms builds the huh forms backing each view.
// Fields bind to pointers owned by the caller's form state; validation
// here runs before submission, so a value that fails never reaches a
// service call.
package huhforms

import (
	"errors"

	"charm.land/huh/v2"

	"github.com/research-collab/collab-cli/internal/validate"
)

// LoginForm creates the login form.
func LoginForm(email, password *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.org").
			Validate(validateEmail).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validateRequired("password is required")).
			Value(password),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// RegisterForm creates the registration form. The confirmation field
// must match the password exactly: case sensitive, no trimming.
func RegisterForm(email, password, confirm *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("you@example.org").
			Validate(validateEmail).
			Value(email),

		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(validateRequired("password is required")).
			Value(password),

		huh.NewInput().
			Key("confirm").
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if !validate.PasswordsMatch(*password, s) {
					return errors.New("passwords do not match")
				}
				return nil
			}).
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateEmail(s string) error {
	if !validate.Required(s) {
		return errors.New("email is required")
	}
	if !validate.Email(s) {
		return errors.New("invalid email format")
	}
	return nil
}

func validateRequired(message string) func(string) error {
	return func(s string) error {
		if !validate.Required(s) {
			return errors.New(message)
		}
		return nil
	}
}
