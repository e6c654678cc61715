package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/foodsafelab/residuecheck/internal/tableio"
	"github.com/foodsafelab/residuecheck/internal/verdict"
)

var batchNoCommit bool

// batchCmd evaluates pasted spreadsheet rows
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate a batch of rows (food, pesticide, quantity per line)",
	Long: `Reads free-text rows from a file or stdin, one sample per line with
three positional fields: food, pesticide, quantity. The delimiter (tab,
comma, or whitespace) is inferred from the data. Rows are evaluated
independently and in order; an unparsable quantity degrades to 0.0 instead
of aborting the run. Non-compliant rows are committed to the audit ledger
unless --no-commit is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchNoCommit, "no-commit", false, "do not record non-compliant rows in the audit ledger")
}

func runBatch(cmd *cobra.Command, args []string) error {
	var input []byte
	var err error
	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}

	rawRows, dropped := tableio.SplitRows(string(input))
	if dropped > 0 {
		logger.Warn("dropped short batch lines", zap.Int("count", dropped))
	}
	if len(rawRows) == 0 {
		return fmt.Errorf("no usable rows in batch input")
	}

	table, err := loadTable()
	if err != nil {
		return err
	}

	var ev *verdict.Evaluator
	config := verdict.Config{Department: department, Action: action, AutoCommit: !batchNoCommit}
	if batchNoCommit {
		ev = verdict.NewEvaluator(table, nil, config)
	} else {
		store, err := openLedger()
		if err != nil {
			return err
		}
		defer store.Close()
		ev = verdict.NewEvaluator(table, store, config)
	}

	rows := make([]verdict.BatchRow, len(rawRows))
	for i, r := range rawRows {
		rows[i] = verdict.BatchRow{Food: r.Food, Pesticide: r.Pesticide, RawQuantity: r.RawQuantity}
	}

	report := ev.EvaluateBatch(rows)

	for i, rr := range report.Rows {
		status := "PASS"
		if !rr.Verdict.Compliant {
			status = "FAIL"
		}
		fmt.Printf("%3d  %-12s %-16s measured=%-8g limit=%-8g [%s] %s",
			i+1, rr.Row.Food, rr.Row.Pesticide, rr.Measured, rr.Verdict.Limit,
			rr.Resolved.Source, status)
		if !rr.Verdict.Compliant {
			fmt.Printf(" exceedance=%.4f", rr.Verdict.Exceedance)
			if rr.AuditID > 0 {
				fmt.Printf(" audit=#%d", rr.AuditID)
			}
		}
		if rr.CommitErr != nil {
			logger.Error("ledger commit failed", zap.Int("row", i+1), zap.Error(rr.CommitErr))
		}
		fmt.Println()
	}

	fmt.Printf("\nrun %s: %d rows, %d committed to ledger\n",
		report.RunID, len(report.Rows), report.Committed)
	return nil
}
