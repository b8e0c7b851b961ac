// Package validate checks the identity fields and recipient selection that
// gate composing an email.
package validate

import (
	"regexp"
	"strings"
)

// emailPattern accepts the usual local@domain.tld shape: no whitespace, one
// @, and at least one dot after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names one failing field with a user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EmailOK reports whether the address has a plausible shape.
func EmailOK(email string) bool {
	return emailPattern.MatchString(email)
}

// Compose returns every problem that blocks composing: signature required,
// email required and well-formed, at least one recipient selected. An empty
// result means compose may proceed.
func Compose(signature, email string, recipientCount int) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(signature) == "" {
		errs = append(errs, FieldError{Field: "signature", Message: "Signature is required"})
	}

	if strings.TrimSpace(email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !EmailOK(strings.TrimSpace(email)) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	if recipientCount == 0 {
		errs = append(errs, FieldError{Field: "recipients", Message: "Select at least one recipient"})
	}

	return errs
}
