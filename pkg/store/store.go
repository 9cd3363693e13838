package store

import (
	"fmt"
	"time"

	"github.com/delog-tool/delog/pkg/types"
)

// Record is one ledger entry: a file that finished a cleanup run, keyed
// by path, the content hash of its post-cleanup state, and the trigger
// set the run removed.
type Record struct {
	Path       string
	BlobID     types.BlobID // hash of the file content after cleanup
	TriggerSet string       // types.ComputeTriggerSetID of the run's triggers
	Removed    int          // call statements removed during that run
	Orphans    int          // orphan lines dropped during that run
	CleanedAt  time.Time
}

// Store persists cleanup run records.
// This interface abstracts the underlying storage implementation,
// allowing for different backends (SQLite, in-memory).
type Store interface {
	// AddRecord stores a ledger entry, replacing any prior entry for the
	// same path, content hash, and trigger set.
	AddRecord(r *Record) error

	// CleanExists reports whether a file with this path and content hash
	// has already completed a run under this trigger set. Incremental mode
	// skips such files; a run with different triggers starts fresh.
	CleanExists(path string, id types.BlobID, triggerSet string) (bool, error)

	// GetRecords retrieves all ledger entries (for reporting).
	GetRecords() ([]*Record, error)

	// Close closes the underlying storage.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// New creates a new Store. ":memory:" paths get the in-memory backend;
// anything else opens a SQLite ledger file.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}
