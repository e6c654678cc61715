package ledger

import "time"

// #region audit-record
// VerdictNonCompliant is the only verdict value the ledger ever stores:
// compliant results are not audit events.
const VerdictNonCompliant = "non-compliant"

// AuditRecord is one append-only non-compliance finding. A record is
// created once and never mutated; corrections are modeled as delete plus
// recreate by the caller. ID is opaque and assigned by the backend.
type AuditRecord struct {
	ID           int64
	CreatedAt    time.Time
	Department   string
	Food         string
	Pesticide    string
	Measured     float64
	AppliedLimit float64
	Exceedance   float64
	Verdict      string
	Action       string
	PolicySource string
	Note         string
}

// #endregion audit-record

// #region store
// Store is an append-only audit ledger. Each mutation is atomic: no
// partial write is ever visible to a reader.
type Store interface {
	// Append stores a record and returns its assigned id.
	Append(rec AuditRecord) (int64, error)
	// Delete removes records by id and returns how many were removed.
	Delete(ids []int64) (int, error)
	// Clear removes every record and returns how many were removed.
	Clear() (int, error)
	// List returns all records, most recent first.
	List() ([]AuditRecord, error)
	// Close releases backing resources.
	Close() error
}

// #endregion store
