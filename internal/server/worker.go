package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/optbridge/internal/objective"
	"github.com/cwbudde/optbridge/internal/opt"
	"github.com/cwbudde/optbridge/internal/search"
)

// runJob executes a search job in the background.
func runJob(ctx context.Context, jm *JobManager, jobID string) error {
	// Get the job
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	// Update state to running
	err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	})
	if err != nil {
		return err
	}

	slog.Info("Starting job", "job_id", jobID, "objective", job.Config.Objective)

	// Resolve the objective
	fn, err := objective.Lookup(job.Config.Objective)
	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	problem := search.Problem{
		Lower:    job.Config.Lower,
		Upper:    job.Config.Upper,
		MaxCalls: job.Config.MaxCalls,
		PopSize:  job.Config.PopSize,
		Seed:     job.Config.Seed,
	}
	if err := problem.Validate(); err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	optimizer := opt.NewMayflyWithBudget(job.Config.MaxCalls, job.Config.PopSize, job.Config.Seed)

	// Check for cancellation before starting expensive operation
	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	start := time.Now()

	// Start progress monitoring goroutine
	progressDone := make(chan struct{})
	go monitorProgress(ctx, jm, jobID, start, progressDone)

	// Improvements update the job so status and stream show them live
	onImprove := func(calls int, value float64, point []float64) {
		jm.UpdateJob(jobID, func(j *Job) {
			j.Calls = calls
			j.BestValue = value
			j.BestPoint = append(j.BestPoint[:0], point...)
		})
	}

	result, err := search.Run(problem, optimizer, fn, onImprove)

	close(progressDone)
	elapsed := time.Since(start)

	if err != nil {
		markJobFailed(jm, jobID, err)
		return err
	}

	// Check for cancellation after optimization
	select {
	case <-ctx.Done():
		markJobCancelled(jm, jobID)
		return ctx.Err()
	default:
	}

	// Update job with results
	endTime := time.Now()
	err = jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.BestPoint = result.Point
		j.BestValue = result.Value
		j.Calls = result.Calls
		j.EndTime = &endTime
	})

	if err != nil {
		return err
	}

	// Compute throughput
	eps := float64(result.Calls) / elapsed.Seconds()

	slog.Info("Job completed",
		"job_id", jobID,
		"elapsed", elapsed,
		"best_value", result.Value,
		"calls", result.Calls,
		"evals_per_second", eps,
	)

	// Broadcast final completion event
	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCompleted,
		Calls:     result.Calls,
		BestValue: result.Value,
		EPS:       eps,
		Timestamp: time.Now(),
	})

	return nil
}

// monitorProgress periodically broadcasts progress events during a search
func monitorProgress(ctx context.Context, jm *JobManager, jobID string, startTime time.Time, done chan struct{}) {
	ticker := time.NewTicker(500 * time.Millisecond) // Throttle to 2 updates per second
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Get current job state
			job, exists := jm.GetJob(jobID)
			if !exists {
				return
			}

			elapsed := time.Since(startTime).Seconds()

			var eps float64
			if elapsed > 0 && job.Calls > 0 {
				eps = float64(job.Calls) / elapsed
			}

			// Broadcast progress event
			jm.broadcaster.Broadcast(ProgressEvent{
				JobID:     jobID,
				State:     job.State,
				Calls:     job.Calls,
				BestValue: job.BestValue,
				EPS:       eps,
				Timestamp: time.Now(),
			})
		}
	}
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	slog.Info("Job cancelled", "job_id", jobID)
}
