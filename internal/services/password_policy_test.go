package services

import (
	"errors"
	"testing"
)

func TestValidatePasswordStrength(t *testing.T) {
	valid := []string{"Secret1A", "Another9x", "LongEnough1"}
	for _, password := range valid {
		if err := ValidatePasswordStrength(password); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", password, err)
		}
	}

	weak := []string{"", "short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, password := range weak {
		if err := ValidatePasswordStrength(password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected %q to be rejected as weak, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrengthCountsRunes(t *testing.T) {
	// Length is measured in runes, not bytes.
	if err := ValidatePasswordStrength("Pä55wörd"); err != nil {
		t.Fatalf("expected 8-rune password to be accepted, got %v", err)
	}
	if err := ValidatePasswordStrength("Pä55wör"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected 7-rune password to be rejected, got %v", err)
	}
}
