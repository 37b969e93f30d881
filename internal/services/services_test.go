package services

import (
	"path/filepath"
	"testing"

	"github.com/mkravets/launchpad/internal/db"
	"github.com/mkravets/launchpad/internal/models"
)

func openTestRepositories(t *testing.T) *db.Repositories {
	t.Helper()
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "launchpad_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db.NewRepositories(database)
}

func seedUser(t *testing.T, repos *db.Repositories, email, role string) models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "!test", Role: role}
	profile := models.NewProfile(0, "Seeded User")
	if err := repos.Users.CreateWithProfile(&user, &profile); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedCollege(t *testing.T, repos *db.Repositories, name string) models.College {
	t.Helper()
	college := models.College{Name: name}
	if err := repos.Colleges.Create(&college); err != nil {
		t.Fatalf("seed college %s: %v", name, err)
	}
	return college
}
