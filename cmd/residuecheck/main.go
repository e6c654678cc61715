package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foodsafelab/residuecheck/internal/ledger"
	"github.com/foodsafelab/residuecheck/internal/limits"
	"github.com/foodsafelab/residuecheck/internal/tableio"
)

var (
	// Global flags
	verbose     bool
	limitsPath  string
	limitsDB    string
	ledgerPath  string
	moistureRef string
	department  string
	action      string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "residuecheck",
	Short: "Pesticide residue compliance checker (Positive List System)",
	Long: `residuecheck evaluates measured pesticide residue concentrations
against a regulatory limits table and records non-compliant findings in an
append-only audit ledger.

Pairs absent from the limits table are not unconstrained: they fall back to
the Positive List System default of 0.01 mg/kg.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&limitsPath, "limits", envOr("RESIDUE_LIMITS", "data.csv"), "limits table CSV file")
	rootCmd.PersistentFlags().StringVar(&limitsDB, "limits-db", os.Getenv("RESIDUE_LIMITS_DB"), "limits table SQLite file (overrides --limits)")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", envOr("RESIDUE_LEDGER", "residue_audit.db"), "audit ledger SQLite file")
	rootCmd.PersistentFlags().StringVar(&moistureRef, "moisture-ref", envOr("RESIDUE_MOISTURE_REF", "moisture.yaml"), "moisture reference YAML file")
	rootCmd.PersistentFlags().StringVar(&department, "department", "quality-control", "requester department stamped on audit records")
	rootCmd.PersistentFlags().StringVar(&action, "action", "hold", "action taken, stamped on audit records")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(driedCmd)
	rootCmd.AddCommand(compositeCmd)
	rootCmd.AddCommand(auditCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadTable loads the limits table from the SQLite source when configured,
// the CSV file otherwise. Skipped and duplicate rows are logged, not fatal.
func loadTable() (limits.Table, error) {
	var (
		table limits.Table
		stats tableio.LoadStats
		err   error
	)
	if limitsDB != "" {
		table, stats, err = tableio.LoadSQLite(limitsDB)
	} else {
		f, ferr := os.Open(limitsPath)
		if ferr != nil {
			return nil, fmt.Errorf("open limits file: %w", ferr)
		}
		defer f.Close()
		table, stats, err = tableio.LoadCSV(f)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("limits table loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("skipped", stats.Skipped),
		zap.Int("duplicates", stats.Duplicates))
	if stats.Skipped > 0 {
		logger.Warn("skipped malformed limit rows", zap.Int("count", stats.Skipped))
	}
	if stats.Duplicates > 0 {
		// First match wins for duplicate pairs; surface the condition.
		logger.Warn("duplicate (food, pesticide) rows in limits table",
			zap.Int("count", stats.Duplicates))
	}
	return table, nil
}

func openLedger() (ledger.Store, error) {
	store, err := ledger.NewSQLiteStore(ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("open audit ledger: %w", err)
	}
	return store, nil
}

// #endregion helpers
