package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current ledger schema version.
// Version 2 added the trigger_set column to the records key.
const SchemaVersion = 2

// CreateSchema creates the ledger schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	if err := createSchemaVersionTable(db); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	if err := createRecordsTable(db); err != nil {
		return fmt.Errorf("creating records table: %w", err)
	}

	return nil
}

func createSchemaVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Insert version if table is empty
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count)
	if err != nil {
		return err
	}

	if count == 0 {
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion)
		return err
	}

	return nil
}

func createRecordsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			blob_id TEXT NOT NULL,
			trigger_set TEXT NOT NULL,
			removed INTEGER NOT NULL,
			orphans INTEGER NOT NULL,
			cleaned_at TEXT NOT NULL,
			UNIQUE(path, blob_id, trigger_set)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_records_path ON records(path)
	`)
	return err
}
