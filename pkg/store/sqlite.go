package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/delog-tool/delog/pkg/types"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed ledger at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddRecord stores a ledger entry, replacing any prior entry for the same
// path, content hash, and trigger set.
func (s *SQLiteStore) AddRecord(r *Record) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO records (path, blob_id, trigger_set, removed, orphans, cleaned_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		r.Path,
		r.BlobID.Hex(),
		r.TriggerSet,
		r.Removed,
		r.Orphans,
		r.CleanedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// CleanExists checks whether this path and content hash completed a run
// under this trigger set.
func (s *SQLiteStore) CleanExists(path string, id types.BlobID, triggerSet string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM records WHERE path = ? AND blob_id = ? AND trigger_set = ?",
		path, id.Hex(), triggerSet,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking record existence: %w", err)
	}
	return count > 0, nil
}

// GetRecords retrieves all ledger entries ordered by path.
func (s *SQLiteStore) GetRecords() ([]*Record, error) {
	rows, err := s.db.Query(`
		SELECT path, blob_id, trigger_set, removed, orphans, cleaned_at
		FROM records
		ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var blobHex, cleanedAt string

		if err := rows.Scan(&r.Path, &blobHex, &r.TriggerSet, &r.Removed, &r.Orphans, &cleanedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		id, err := types.ParseBlobID(blobHex)
		if err != nil {
			return nil, fmt.Errorf("parsing blob ID: %w", err)
		}
		r.BlobID = id

		t, err := time.Parse(time.RFC3339Nano, cleanedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp: %w", err)
		}
		r.CleanedAt = t

		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
