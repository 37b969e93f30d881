package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLaunchpadDSNUsesModerncPragmaForm(t *testing.T) {
	dsn := launchpadDSN("data/launchpad.db")
	if !strings.Contains(dsn, "_pragma=foreign_keys(1)") {
		t.Fatalf("dsn does not enable foreign keys: %q", dsn)
	}
	if !strings.Contains(dsn, "_pragma=busy_timeout(5000)") {
		t.Fatalf("dsn does not set a busy timeout: %q", dsn)
	}
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "launchpad.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var enabled int
	if err := database.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", enabled)
	}

	// A profile pointing at a user that does not exist must be rejected.
	err = database.Exec("INSERT INTO profiles (user_id, name) VALUES (?, ?)", 999, "orphan").Error
	if err == nil {
		t.Fatal("expected orphan insert to violate the foreign key")
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "launchpad.db")
	if _, err := OpenSQLite(dbPath); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := OpenSQLite(dbPath); err != nil {
		t.Fatalf("reopen over applied migrations: %v", err)
	}
}
