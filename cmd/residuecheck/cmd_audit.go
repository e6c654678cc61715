package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd groups ledger maintenance commands
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect and maintain the non-compliance audit ledger",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit records, most recent first",
	RunE:  runAuditList,
}

var auditDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete audit records by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAuditDelete,
}

var auditClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every audit record",
	RunE:  runAuditClear,
}

func init() {
	auditCmd.AddCommand(auditListCmd)
	auditCmd.AddCommand(auditDeleteCmd)
	auditCmd.AddCommand(auditClearCmd)
}

func runAuditList(cmd *cobra.Command, args []string) error {
	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List()
	if err != nil {
		return fmt.Errorf("list audit records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("ledger is empty")
		return nil
	}
	for _, r := range records {
		fmt.Printf("#%-4d %s  %-12s %-16s measured=%-8g limit=%-8g exceedance=%.4f  [%s] %s/%s",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Food, r.Pesticide,
			r.Measured, r.AppliedLimit, r.Exceedance, r.PolicySource,
			r.Department, r.Action)
		if r.Note != "" {
			fmt.Printf("  (%s)", r.Note)
		}
		fmt.Println()
	}
	return nil
}

func runAuditDelete(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("bad record id %q", a)
		}
		ids = append(ids, id)
	}

	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Delete(ids)
	if err != nil {
		return fmt.Errorf("delete audit records: %w", err)
	}
	logger.Info("audit records deleted", zap.Int("count", n))
	fmt.Printf("%d record(s) deleted\n", n)
	return nil
}

func runAuditClear(cmd *cobra.Command, args []string) error {
	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear audit ledger: %w", err)
	}
	logger.Info("audit ledger cleared", zap.Int("count", n))
	fmt.Printf("%d record(s) deleted\n", n)
	return nil
}
