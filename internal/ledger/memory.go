package ledger

import "sync"

// #region memory-store
// MemoryStore is a mutex-guarded in-memory ledger. It backs tests and
// sessions that do not need the findings to outlive the process.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int64
	records []AuditRecord
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append stores a record under the next auto-increment id.
func (m *MemoryStore) Append(rec AuditRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = m.nextID
	m.nextID++
	m.records = append(m.records, rec)
	return rec.ID, nil
}

// Delete removes records whose ids appear in ids. Unknown ids are ignored.
func (m *MemoryStore) Delete(ids []int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := m.records[:0]
	removed := 0
	for _, r := range m.records {
		if _, ok := drop[r.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return removed, nil
}

// Clear removes every record.
func (m *MemoryStore) Clear() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.records)
	m.records = nil
	return n, nil
}

// List returns records most recent first.
func (m *MemoryStore) List() ([]AuditRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AuditRecord, len(m.records))
	for i, r := range m.records {
		out[len(m.records)-1-i] = r
	}
	return out, nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryStore) Close() error { return nil }

// #endregion memory-store
