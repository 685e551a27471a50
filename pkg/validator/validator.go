package validator

import (
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// ValidateSignup checks that every signup field is present.
func ValidateSignup(email, password, name, username string) ValidationErrors {
	errs := make(ValidationErrors)

	if email == "" {
		errs.Add("email", "Email is required")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}
	if name == "" {
		errs.Add("name", "Name is required")
	}
	if username == "" {
		errs.Add("username", "Username is required")
	}

	return errs
}

// ValidateLogin checks login fields. Emails containing a single quote are
// rejected here, before any query is issued.
func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if email == "" {
		errs.Add("email", "Email is required")
	} else if strings.Contains(email, "'") {
		errs.Add("email", "Email must not contain quotes")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}
