// Package migrations applies the embedded schema scripts to a database.
// Scripts are forward-only; the schema only ever grows and nothing rolls
// a version back.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var scriptsFS embed.FS

// script is one embedded schema script, named NNNNNN_description.sql.
type script struct {
	version int
	name    string
	sql     string
}

// RunMigrations applies every schema script not yet recorded in the
// schema_migrations table, each inside its own transaction.
func RunMigrations(db *sql.DB) error {
	if err := createSchemaTable(db); err != nil {
		return fmt.Errorf("failed to create schema table: %w", err)
	}

	scripts, err := loadScripts()
	if err != nil {
		return fmt.Errorf("failed to load schema scripts: %w", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return fmt.Errorf("failed to read applied versions: %w", err)
	}

	for _, s := range scripts {
		if applied[s.version] {
			continue
		}
		if err := apply(db, s); err != nil {
			return fmt.Errorf("failed to apply %s: %w", s.name, err)
		}
	}

	return nil
}

func createSchemaTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := db.Exec(query)
	return err
}

func loadScripts() ([]script, error) {
	entries, err := scriptsFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var scripts []script
	for _, entry := range entries {
		version, name, ok := parseScriptName(entry.Name())
		if !ok {
			continue
		}

		body, err := scriptsFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		scripts = append(scripts, script{
			version: version,
			name:    name,
			sql:     string(body),
		})
	}

	sort.Slice(scripts, func(i, j int) bool {
		return scripts[i].version < scripts[j].version
	})

	return scripts, nil
}

// parseScriptName splits "000002_create_views.sql" into version 2 and
// name "create_views".
func parseScriptName(filename string) (int, string, bool) {
	base, ok := strings.CutSuffix(filename, ".sql")
	if !ok {
		return 0, "", false
	}
	prefix, name, ok := strings.Cut(base, "_")
	if !ok {
		return 0, "", false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, "", false
	}
	return version, name, true
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func apply(db *sql.DB, s script) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(s.sql); err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", s.version, s.name); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
