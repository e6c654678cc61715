package verdict

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/foodsafelab/residuecheck/internal/ledger"
	"github.com/foodsafelab/residuecheck/internal/limits"
	"github.com/foodsafelab/residuecheck/internal/quantity"
)

// #region errors
var (
	// ErrCompliantVerdict is returned when a caller tries to commit a
	// passing result: the ledger records non-compliance only.
	ErrCompliantVerdict = errors.New("refusing to commit a compliant verdict")
	// ErrNoLedger is returned when no ledger store is attached.
	ErrNoLedger = errors.New("no ledger attached")
)

// #endregion errors

// #region evaluator
// Evaluator runs single and batch evaluations against one table snapshot,
// committing non-compliant findings to the audit ledger. The table is
// never modified; swapping in a reloaded table means building a new
// Evaluator, and past results stand.
type Evaluator struct {
	table  limits.Table
	store  ledger.Store
	config Config
}

// NewEvaluator creates an evaluator. store may be nil when no ledger is
// attached; commits then fail with ErrNoLedger and batch runs skip them.
func NewEvaluator(table limits.Table, store ledger.Store, config Config) *Evaluator {
	return &Evaluator{table: table, store: store, config: config}
}

// #endregion evaluator

// #region evaluate-one
// EvaluateOne resolves and evaluates a single query without touching the
// ledger.
func (e *Evaluator) EvaluateOne(food, pesticide string, measured float64) (limits.ResolvedLimit, Verdict) {
	rl := limits.Resolve(e.table, food, pesticide)
	return rl, Evaluate(rl.Value, measured)
}

// #endregion evaluate-one

// #region commit
// Commit appends a non-compliance finding to the ledger and returns its
// assigned id. Compliant verdicts are never recorded.
func (e *Evaluator) Commit(food string, rl limits.ResolvedLimit, v Verdict, note string) (int64, error) {
	if v.Compliant {
		return 0, ErrCompliantVerdict
	}
	if e.store == nil {
		return 0, ErrNoLedger
	}
	return e.store.Append(ledger.AuditRecord{
		CreatedAt:    time.Now().UTC(),
		Department:   e.config.Department,
		Food:         food,
		Pesticide:    rl.Pesticide,
		Measured:     v.Measured,
		AppliedLimit: v.Limit,
		Exceedance:   v.Exceedance,
		Verdict:      ledger.VerdictNonCompliant,
		Action:       e.config.Action,
		PolicySource: string(rl.Source),
		Note:         note,
	})
}

// #endregion commit

// #region evaluate-batch
// EvaluateBatch processes rows sequentially and independently. An
// unparsable quantity degrades that row to 0.0; a failed ledger write is
// recorded on the row. Neither aborts the run. Non-compliant rows are
// committed unless auto-commit is off or no ledger is attached. Output
// order matches input order.
func (e *Evaluator) EvaluateBatch(rows []BatchRow) BatchReport {
	report := BatchReport{
		RunID: uuid.New().String(),
		Rows:  make([]RowResult, 0, len(rows)),
	}
	for _, row := range rows {
		measured := quantity.Parse(row.RawQuantity)
		rl, v := e.EvaluateOne(row.Food, row.Pesticide, measured)
		rr := RowResult{Row: row, Measured: measured, Resolved: rl, Verdict: v}
		if !v.Compliant && e.config.AutoCommit && e.store != nil {
			id, err := e.Commit(row.Food, rl, v, "batch run "+report.RunID)
			if err != nil {
				rr.CommitErr = err
			} else {
				rr.AuditID = id
				report.Committed++
			}
		}
		report.Rows = append(report.Rows, rr)
	}
	return report
}

// #endregion evaluate-batch
