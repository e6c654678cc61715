package verdict

import "github.com/foodsafelab/residuecheck/internal/limits"

// #region verdict
// Verdict is the pass/fail outcome for one measurement against one limit.
// Derived once, never mutated.
type Verdict struct {
	Limit      float64
	Measured   float64
	Compliant  bool
	Exceedance float64
}

// #endregion verdict

// #region batch-types
// BatchRow is one pasted input row. RawQuantity stays a string here;
// parsing happens per row during evaluation so one bad cell only affects
// its own verdict.
type BatchRow struct {
	Food        string
	Pesticide   string
	RawQuantity string
}

// RowResult pairs an input row with its resolution and verdict. Output
// order matches input order; position is the only row identity.
type RowResult struct {
	Row       BatchRow
	Measured  float64
	Resolved  limits.ResolvedLimit
	Verdict   Verdict
	AuditID   int64 // ledger id when committed, 0 otherwise
	CommitErr error
}

// BatchReport is the outcome of one batch run.
type BatchReport struct {
	RunID     string
	Rows      []RowResult
	Committed int
}

// Config carries the fixed requester fields stamped on committed audit
// records, and whether non-compliant batch rows commit automatically.
type Config struct {
	Department string
	Action     string
	AutoCommit bool
}

// DefaultConfig returns the batch defaults: auto-commit on, generic
// requester fields.
func DefaultConfig() Config {
	return Config{
		Department: "quality-control",
		Action:     "hold",
		AutoCommit: true,
	}
}

// #endregion batch-types
