package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp applies every up script in name order. Scripts are idempotent,
// so it runs on every open.
func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, ".up.sql", false)
}

// MigrateDown applies the down scripts in reverse order.
func MigrateDown(db *sql.DB) error {
	return applyMigrations(db, ".down.sql", true)
}

func applyMigrations(db *sql.DB, suffix string, reverse bool) error {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	}
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		tx, txErr := db.Begin()
		if txErr != nil {
			return fmt.Errorf("begin migration %s: %w", name, txErr)
		}
		if _, execErr := tx.Exec(string(sqlBytes)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %s: %w", name, execErr)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", name, err)
		}
	}
	return nil
}
