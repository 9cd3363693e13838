package store

import (
	"sort"
	"sync"

	"github.com/delog-tool/delog/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
// Used for tests and throwaway runs; nothing survives the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record // keyed by path, blob hash, and trigger set
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
	}
}

func recordKey(path string, id types.BlobID, triggerSet string) string {
	return path + "\x00" + id.Hex() + "\x00" + triggerSet
}

// AddRecord stores a ledger entry, replacing any prior entry for the same
// path, content hash, and trigger set.
func (m *MemoryStore) AddRecord(r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *r
	m.records[recordKey(r.Path, r.BlobID, r.TriggerSet)] = &cp
	return nil
}

// CleanExists checks whether this path and content hash completed a run
// under this trigger set.
func (m *MemoryStore) CleanExists(path string, id types.BlobID, triggerSet string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.records[recordKey(path, id, triggerSet)]
	return exists, nil
}

// GetRecords retrieves all ledger entries ordered by path.
func (m *MemoryStore) GetRecords() ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0, len(m.records))
	for _, r := range m.records {
		cp := *r
		records = append(records, &cp)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Path != records[j].Path {
			return records[i].Path < records[j].Path
		}
		return records[i].BlobID.Hex() < records[j].BlobID.Hex()
	})

	return records, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
