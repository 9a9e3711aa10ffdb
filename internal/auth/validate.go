package auth

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// PasswordPolicy is the single place the password-strength rules live.
// Values come from configuration, not constants.
type PasswordPolicy struct {
	MinLength     int
	RequireLetter bool
	RequireDigit  bool
}

func (p PasswordPolicy) check(password string) *ValidationError {
	if len(password) < p.MinLength {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", p.MinLength)}
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if p.RequireLetter && !hasLetter {
		return &ValidationError{Field: "password", Reason: "must contain a letter"}
	}
	if p.RequireDigit && !hasDigit {
		return &ValidationError{Field: "password", Reason: "must contain a digit"}
	}
	return nil
}

// validateRegistration checks fields in a fixed order and returns the first
// violation. It runs before any store access.
func validateRegistration(in RegisterInput, policy PasswordPolicy) error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(in.Email) == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if strings.TrimSpace(in.Username) == "" {
		return &ValidationError{Field: "username", Reason: "is required"}
	}
	if in.Password == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	if ve := policy.check(in.Password); ve != nil {
		return ve
	}
	return nil
}
