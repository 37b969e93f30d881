package services

import (
	"testing"

	"github.com/mkravets/launchpad/internal/models"
)

func TestStudentProfileWithoutCollegeIsIncomplete(t *testing.T) {
	profile := &models.Profile{
		Name:           "Dana Ferris",
		Major:          "Computer Science",
		GraduationYear: 2027,
		Skills:         []string{"go", "sql"},
		College:        "",
	}
	if IsProfileComplete(models.RoleStudent, profile) {
		t.Fatal("expected student profile without college to be incomplete")
	}

	missing := MissingProfileFields(models.RoleStudent, profile)
	if len(missing) != 1 || missing[0] != "college" {
		t.Fatalf("expected only college to be missing, got %#v", missing)
	}
}

func TestStartupProfileWithoutCompanyNameIsIncomplete(t *testing.T) {
	profile := &models.Profile{
		Name:     "Ravi Anand",
		Industry: "fintech",
		Stage:    "seed",
	}
	if IsProfileComplete(models.RoleStartup, profile) {
		t.Fatal("expected startup profile without company name to be incomplete")
	}
}

func TestProfileWithAllRoleFieldsIsComplete(t *testing.T) {
	student := &models.Profile{Name: "Dana Ferris", College: "Eastfield"}
	if !IsProfileComplete(models.RoleStudent, student) {
		t.Fatal("expected student profile to be complete")
	}

	startup := &models.Profile{Name: "Ravi Anand", CompanyName: "Loopwire"}
	if !IsProfileComplete(models.RoleStartup, startup) {
		t.Fatal("expected startup profile to be complete")
	}
}

func TestBlankNameIsIncompleteForEveryRole(t *testing.T) {
	roles := []string{
		models.RoleStudent,
		models.RoleStartup,
		models.RoleCollegeAdmin,
		models.RolePlatformAdmin,
	}
	for _, role := range roles {
		profile := &models.Profile{Name: "   ", College: "Eastfield", CompanyName: "Loopwire"}
		if IsProfileComplete(role, profile) {
			t.Fatalf("expected blank name to make %s profile incomplete", role)
		}
	}
}

func TestMissingProfileIsIncomplete(t *testing.T) {
	if IsProfileComplete(models.RoleStudent, nil) {
		t.Fatal("expected nil profile to be incomplete")
	}
}

func TestAdminRolesNeedOnlyName(t *testing.T) {
	profile := &models.Profile{Name: "Sam Okafor"}
	if !IsProfileComplete(models.RoleCollegeAdmin, profile) {
		t.Fatal("expected college admin profile with name to be complete")
	}
	if !IsProfileComplete(models.RolePlatformAdmin, profile) {
		t.Fatal("expected platform admin profile with name to be complete")
	}
}
