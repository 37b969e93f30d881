package services

import (
	"strings"

	"github.com/mkravets/launchpad/internal/models"
)

// IsProfileComplete reports whether the profile carries every field its role
// requires. A missing profile is never complete.
func IsProfileComplete(role string, profile *models.Profile) bool {
	return len(MissingProfileFields(role, profile)) == 0
}

func MissingProfileFields(role string, profile *models.Profile) []string {
	if profile == nil {
		return []string{"name"}
	}

	missing := make([]string, 0, 2)
	if strings.TrimSpace(profile.Name) == "" {
		missing = append(missing, "name")
	}
	switch role {
	case models.RoleStudent:
		if strings.TrimSpace(profile.College) == "" {
			missing = append(missing, "college")
		}
	case models.RoleStartup:
		if strings.TrimSpace(profile.CompanyName) == "" {
			missing = append(missing, "company_name")
		}
	}
	return missing
}
