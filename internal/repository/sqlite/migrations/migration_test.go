package migrations

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesTables(t *testing.T) {
	db := setupTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("RunMigrations() error: %v", err)
	}

	for _, table := range []string{"schema_migrations", "conductor_state", "views"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count query error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 applied scripts, got %d", count)
	}
}

func TestLoadScripts_Ordered(t *testing.T) {
	scripts, err := loadScripts()
	if err != nil {
		t.Fatalf("loadScripts() error: %v", err)
	}
	if len(scripts) != 2 {
		t.Fatalf("expected 2 scripts, got %d", len(scripts))
	}
	for i := 1; i < len(scripts); i++ {
		if scripts[i-1].version >= scripts[i].version {
			t.Errorf("scripts out of order: %d before %d", scripts[i-1].version, scripts[i].version)
		}
	}
	for _, s := range scripts {
		if s.sql == "" {
			t.Errorf("script %s has no SQL", s.name)
		}
	}
}

func TestParseScriptName(t *testing.T) {
	tests := []struct {
		filename string
		version  int
		name     string
		ok       bool
	}{
		{"000001_create_conductor_state.sql", 1, "create_conductor_state", true},
		{"000002_create_views.sql", 2, "create_views", true},
		{"notes.txt", 0, "", false},
		{"create_views.sql", 0, "", false},
		{"000000_zero.sql", 0, "", false},
	}

	for _, tt := range tests {
		version, name, ok := parseScriptName(tt.filename)
		if version != tt.version || name != tt.name || ok != tt.ok {
			t.Errorf("parseScriptName(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.filename, version, name, ok, tt.version, tt.name, tt.ok)
		}
	}
}
