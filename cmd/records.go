package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/optbridge/internal/store"
)

var recordDataDir string

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage saved run records",
	Long:  `List, inspect and delete run records saved by the run command.`,
}

var listRecordsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved run records",
	RunE:  runListRecords,
}

var showRecordCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a single run record",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowRecord,
}

var deleteRecordCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run record and its trace",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteRecord,
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.AddCommand(listRecordsCmd)
	recordsCmd.AddCommand(showRecordCmd)
	recordsCmd.AddCommand(deleteRecordCmd)

	recordsCmd.PersistentFlags().StringVar(&recordDataDir, "data-dir", "./data", "Base directory for record storage")
}

func runListRecords(cmd *cobra.Command, args []string) error {
	recordStore, err := store.NewFSStore(recordDataDir)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}

	infos, err := recordStore.ListRecords()
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(infos) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tTIMESTAMP\tOBJECTIVE\tDIM\tCALLS\tBEST VALUE\tSIZE")
	fmt.Fprintln(w, "------\t---------\t---------\t---\t-----\t----------\t----")

	for _, info := range infos {
		runDir := filepath.Join(recordDataDir, "runs", info.RunID)
		size, err := getDirSize(runDir)
		sizeStr := "unknown"
		if err == nil {
			sizeStr = formatBytes(size)
		}

		timestamp := info.Timestamp.Format("2006-01-02 15:04:05")

		// Truncate run ID for display
		displayID := info.RunID
		if len(displayID) > 12 {
			displayID = displayID[:12] + "..."
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.6g\t%s\n",
			displayID,
			timestamp,
			info.Objective,
			info.Dim,
			info.Calls,
			info.BestValue,
			sizeStr,
		)
	}

	w.Flush()

	fmt.Printf("\nTotal records: %d\n", len(infos))
	return nil
}

func runShowRecord(cmd *cobra.Command, args []string) error {
	recordStore, err := store.NewFSStore(recordDataDir)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}

	record, err := recordStore.LoadRecord(args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("record not found: %s", args[0])
		}
		return fmt.Errorf("failed to load record: %w", err)
	}

	fmt.Printf("Run: %s\n", record.RunID)
	fmt.Printf("Timestamp: %s\n", record.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println()

	fmt.Println("Configuration:")
	fmt.Printf("  Objective: %s\n", record.Config.Objective)
	fmt.Printf("  Lower: %v\n", record.Config.Lower)
	fmt.Printf("  Upper: %v\n", record.Config.Upper)
	fmt.Printf("  Budget: %d\n", record.Config.MaxCalls)
	fmt.Printf("  Population: %d\n", record.Config.PopSize)
	fmt.Printf("  Seed: %d\n", record.Config.Seed)
	fmt.Println()

	fmt.Println("Result:")
	fmt.Printf("  Best Value: %g\n", record.BestValue)
	fmt.Printf("  Best Point: %v\n", record.BestPoint)
	fmt.Printf("  Calls: %d\n", record.Calls)

	return nil
}

func runDeleteRecord(cmd *cobra.Command, args []string) error {
	recordStore, err := store.NewFSStore(recordDataDir)
	if err != nil {
		return fmt.Errorf("failed to create record store: %w", err)
	}

	if err := recordStore.DeleteRecord(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("record not found: %s", args[0])
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Printf("Deleted record %s\n", args[0])
	return nil
}

// getDirSize calculates the total size of a directory
func getDirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
