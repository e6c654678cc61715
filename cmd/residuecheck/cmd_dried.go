package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodsafelab/residuecheck/internal/limits"
	"github.com/foodsafelab/residuecheck/internal/moisture"
	"github.com/foodsafelab/residuecheck/internal/quantity"
	"github.com/foodsafelab/residuecheck/internal/verdict"
)

var (
	driedFood         string
	driedPesticide    string
	driedMeasured     string
	driedRawPct       float64
	driedProcessedPct float64
	driedCommit       bool
)

// driedCmd evaluates a dried/processed sample
var driedCmd = &cobra.Command{
	Use:   "dried",
	Short: "Evaluate a dried or processed sample against a rescaled limit",
	Long: `Resolves the raw-commodity limit, rescales it by the moisture
conversion factor (100-processed)/(100-raw), and evaluates the measurement
against the dried equivalent. Moisture percentages come from flags, or from
the moisture reference YAML keyed by food name when the flags are omitted.`,
	RunE: runDried,
}

func init() {
	driedCmd.Flags().StringVar(&driedFood, "food", "", "raw food name (required)")
	driedCmd.Flags().StringVar(&driedPesticide, "pesticide", "", "pesticide name (required)")
	driedCmd.Flags().StringVar(&driedMeasured, "measured", "", "measured concentration in mg/kg (required)")
	driedCmd.MarkFlagRequired("food")
	driedCmd.MarkFlagRequired("pesticide")
	driedCmd.MarkFlagRequired("measured")
	driedCmd.Flags().Float64Var(&driedRawPct, "raw-moisture", -1, "raw commodity moisture percent")
	driedCmd.Flags().Float64Var(&driedProcessedPct, "processed-moisture", -1, "processed commodity moisture percent")
	driedCmd.Flags().BoolVar(&driedCommit, "commit", false, "record a non-compliant result in the audit ledger")
}

func runDried(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	profile, err := resolveProfile()
	if err != nil {
		return err
	}

	ev := verdict.NewEvaluator(table, nil, verdict.Config{Department: department, Action: action})
	rl, _ := ev.EvaluateOne(driedFood, driedPesticide, 0)

	factor := moisture.Factor(profile.RawPct, profile.ProcessedPct)
	dried := moisture.DriedLimit(rl.Value, profile.RawPct, profile.ProcessedPct)
	measured := quantity.Parse(driedMeasured)
	v := verdict.Evaluate(dried, measured)

	printResolved(rl)
	fmt.Printf("moisture: raw %g%% -> processed %g%% (factor %.4f)\n",
		profile.RawPct, profile.ProcessedPct, factor)
	fmt.Printf("dried limit: %.4f mg/kg\n", dried)
	printVerdict(v)

	if !v.Compliant && driedCommit {
		store, err := openLedger()
		if err != nil {
			return err
		}
		defer store.Close()
		committer := verdict.NewEvaluator(table, store, verdict.Config{Department: department, Action: action})
		driedRL := limits.ResolvedLimit{Pesticide: rl.Pesticide, Value: dried, Source: rl.Source}
		id, err := committer.Commit(driedFood, driedRL, v, fmt.Sprintf("dried sample, factor %.4f", factor))
		if err != nil {
			return fmt.Errorf("commit audit record: %w", err)
		}
		logger.Info("audit record committed", zap.Int64("id", id))
		fmt.Printf("audit record #%d committed\n", id)
	}
	return nil
}

// resolveProfile prefers explicit flags; the YAML reference fills in a
// profile only when both flags are omitted.
func resolveProfile() (moisture.Profile, error) {
	if driedRawPct >= 0 && driedProcessedPct >= 0 {
		return moisture.Profile{RawPct: driedRawPct, ProcessedPct: driedProcessedPct}, nil
	}
	ref, err := moisture.LoadReference(moistureRef)
	if err != nil {
		return moisture.Profile{}, fmt.Errorf("moisture flags omitted and reference unavailable: %w", err)
	}
	p, ok := ref.Lookup(driedFood)
	if !ok {
		return moisture.Profile{}, fmt.Errorf("no moisture profile for %q in %s", driedFood, moistureRef)
	}
	logger.Debug("moisture profile from reference",
		zap.String("food", driedFood),
		zap.Float64("raw_pct", p.RawPct),
		zap.Float64("processed_pct", p.ProcessedPct))
	return p, nil
}
