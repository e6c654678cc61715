package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodsafelab/residuecheck/internal/limits"
	"github.com/foodsafelab/residuecheck/internal/quantity"
	"github.com/foodsafelab/residuecheck/internal/verdict"
)

var (
	checkFood      string
	checkPesticide string
	checkMeasured  string
	checkCommit    bool
)

// checkCmd evaluates a single measurement
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a single measurement against the limits table",
	Long: `Resolves the applicable limit for a food and pesticide, then compares
the measured concentration against it. Noisy or partial pesticide names are
matched by case-insensitive containment against the canonical names.

With --commit, a non-compliant result is appended to the audit ledger.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFood, "food", "", "food name (required)")
	checkCmd.Flags().StringVar(&checkPesticide, "pesticide", "", "pesticide name (required)")
	checkCmd.Flags().StringVar(&checkMeasured, "measured", "", "measured concentration in mg/kg (required)")
	checkCmd.MarkFlagRequired("food")
	checkCmd.MarkFlagRequired("pesticide")
	checkCmd.MarkFlagRequired("measured")
	checkCmd.Flags().BoolVar(&checkCommit, "commit", false, "record a non-compliant result in the audit ledger")
}

func runCheck(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	measured := quantity.Parse(checkMeasured)
	ev := verdict.NewEvaluator(table, nil, verdict.Config{Department: department, Action: action})
	rl, v := ev.EvaluateOne(checkFood, checkPesticide, measured)

	printResolved(rl)
	printVerdict(v)

	if !v.Compliant && checkCommit {
		store, err := openLedger()
		if err != nil {
			return err
		}
		defer store.Close()

		committer := verdict.NewEvaluator(table, store, verdict.Config{Department: department, Action: action})
		id, err := committer.Commit(checkFood, rl, v, "single query")
		if err != nil {
			return fmt.Errorf("commit audit record: %w", err)
		}
		logger.Info("audit record committed", zap.Int64("id", id))
		fmt.Printf("audit record #%d committed\n", id)
	}
	return nil
}

// #region output
func printResolved(rl limits.ResolvedLimit) {
	switch rl.Source {
	case limits.SourceExplicit:
		fmt.Printf("limit: %g mg/kg (explicit, %s)\n", rl.Value, rl.Pesticide)
	default:
		fmt.Printf("limit: %g mg/kg (default policy, unregistered pair)\n", rl.Value)
	}
}

func printVerdict(v verdict.Verdict) {
	if v.Compliant {
		fmt.Printf("verdict: COMPLIANT (measured %g <= limit %g)\n", v.Measured, v.Limit)
		return
	}
	fmt.Printf("verdict: NON-COMPLIANT (measured %g > limit %g, exceedance %.4f)\n",
		v.Measured, v.Limit, v.Exceedance)
}

// #endregion output
