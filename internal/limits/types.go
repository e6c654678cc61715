package limits

// #region limit-entry
// LimitEntry is one regulatory row: the maximum residue limit in mg/kg
// for a (food, pesticide) pair. Name fields arrive whitespace-trimmed
// from the ingestion layer.
type LimitEntry struct {
	Food      string
	Pesticide string
	Limit     float64
}

// #endregion limit-entry

// #region table
// Table is the limits table for one evaluation session. Order matters:
// duplicate (food, pesticide) rows resolve to the first match in source
// order, so loaders preserve it. The table is read-only once handed in;
// a reload produces a new snapshot and never rewrites past results.
type Table []LimitEntry

// #endregion table

// #region source
// Source identifies which policy produced a resolved limit.
type Source string

const (
	// SourceExplicit means a published row exists for the exact pair.
	SourceExplicit Source = "explicit"
	// SourceDefaultPolicy means the pair is unregistered and the
	// Positive List System catch-all applies.
	SourceDefaultPolicy Source = "default_policy"
)

// #endregion source

// #region resolved-limit
// DefaultLimit is the Positive List System catch-all bound in mg/kg.
// A pair absent from the table is bound by it, never left unconstrained.
const DefaultLimit = 0.01

// ResolvedLimit is the outcome of a limit lookup for one query. Pesticide
// holds the canonical name when one matched, the requested name otherwise.
type ResolvedLimit struct {
	Pesticide string
	Value     float64
	Source    Source
}

// #endregion resolved-limit
