package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/optbridge/internal/objective"
	"github.com/cwbudde/optbridge/internal/opt"
	"github.com/cwbudde/optbridge/internal/search"
	"github.com/cwbudde/optbridge/internal/store"
)

var (
	objName  string
	dim      int
	lower    float64
	upper    float64
	maxCalls int
	popSize  int
	seed     int64
	dataDir  string
	save     bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single budgeted search",
	Long:  `Runs a bounded global search over a named objective and prints the best point and value.`,
	RunE:  runSearch,
}

func init() {
	runCmd.Flags().StringVar(&objName, "objective", "sphere", "Objective function name")
	runCmd.Flags().IntVar(&dim, "dim", 2, "Search dimensionality")
	runCmd.Flags().Float64Var(&lower, "lower", -10, "Lower bound (applied to every dimension)")
	runCmd.Flags().Float64Var(&upper, "upper", 10, "Upper bound (applied to every dimension)")
	runCmd.Flags().IntVar(&maxCalls, "max-calls", 2000, "Evaluation budget")
	runCmd.Flags().IntVar(&popSize, "pop", 20, "Population size")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	runCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Base directory for run records")
	runCmd.Flags().BoolVar(&save, "save", false, "Save the result as a run record")
	runCmd.Flags().BoolVar(&trace, "trace", false, "Write a JSONL trace of best-value improvements (implies --save)")

	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	slog.Info("Starting run", "objective", objName, "dim", dim, "max_calls", maxCalls)

	fn, err := objective.Lookup(objName)
	if err != nil {
		return err
	}

	lowerVec := make([]float64, dim)
	upperVec := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lowerVec[i] = lower
		upperVec[i] = upper
	}

	problem := search.Problem{
		Lower:    lowerVec,
		Upper:    upperVec,
		MaxCalls: maxCalls,
		PopSize:  popSize,
		Seed:     seed,
	}

	runID := uuid.New().String()

	// Set up the trace writer before the search so improvements can be
	// streamed to disk as they happen
	var onImprove search.Progress
	var traceWriter *store.TraceWriter
	if trace {
		save = true
		traceWriter, err = store.NewTraceWriter(dataDir, runID, false)
		if err != nil {
			return fmt.Errorf("failed to create trace writer: %w", err)
		}
		defer traceWriter.Close()

		onImprove = func(calls int, value float64, point []float64) {
			entry := store.TraceEntry{
				Calls:     calls,
				Value:     value,
				Timestamp: time.Now(),
			}
			if err := traceWriter.Write(entry); err != nil {
				slog.Warn("Failed to write trace entry", "error", err)
			}
		}
	}

	optimizer := opt.NewMayflyWithBudget(maxCalls, popSize, seed)

	start := time.Now()
	result, err := search.Run(problem, optimizer, fn, onImprove)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	eps := float64(result.Calls) / elapsed.Seconds()

	slog.Info("Run complete",
		"elapsed", elapsed,
		"best_value", result.Value,
		"calls", result.Calls,
		"evals_per_second", fmt.Sprintf("%.0f", eps),
	)

	if save {
		recordStore, err := store.NewFSStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to create record store: %w", err)
		}

		record := store.NewRecord(runID, result.Point, result.Value, result.Calls, store.RunConfig{
			Objective: objName,
			Lower:     lowerVec,
			Upper:     upperVec,
			MaxCalls:  maxCalls,
			PopSize:   popSize,
			Seed:      seed,
		})

		if err := recordStore.SaveRecord(runID, record); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}

		fmt.Printf("Saved record %s\n", runID)
	}

	fmt.Printf("Best value: %g after %d calls\n", result.Value, result.Calls)
	fmt.Printf("Best point: %v\n", result.Point)

	return nil
}
