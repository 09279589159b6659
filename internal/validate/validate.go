// Package validate holds the form-level checks that run before any
// network call is made. A value that fails here never reaches the wire.
package validate

import "regexp"

// emailPattern mirrors the permissive format check the platform's forms
// have always used: something@something.tld, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required reports whether the value is non-empty.
func Required(value string) bool {
	return value != ""
}

// Email reports whether the value looks like an email address.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}

// PasswordsMatch reports whether the password and its confirmation are
// identical. Case sensitive, no trimming.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}
