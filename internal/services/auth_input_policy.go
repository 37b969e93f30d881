package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/mkravets/launchpad/internal/models"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrSignupRoleInvalid      = errors.New("signup role invalid")
	ErrSignupNameInvalid      = errors.New("signup name invalid")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// ValidateSignupRole accepts only the self-service roles. Admin roles are
// granted out of band, never through registration.
func ValidateSignupRole(role string) error {
	for _, allowed := range models.SignupRoles() {
		if role == allowed {
			return nil
		}
	}
	return ErrSignupRoleInvalid
}

func NormalizeSignupName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrSignupNameInvalid
	}
	return name, nil
}
