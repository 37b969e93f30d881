package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Launchpad accounts carry payment and verification state, so sign-up
// enforces a minimum bar: length plus mixed-case letters and a digit.
const minPasswordRunes = 8

var ErrWeakPassword = errors.New("weak password")

func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordRunes {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
