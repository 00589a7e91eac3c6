package store

import (
	"fmt"
	"time"
)

// RunConfig holds the configuration of a search run (record copy).
// This avoids import cycles with the server package.
type RunConfig struct {
	Objective string    `json:"objective"`
	Lower     []float64 `json:"lower"`
	Upper     []float64 `json:"upper"`
	MaxCalls  int       `json:"maxCalls"`
	PopSize   int       `json:"popSize"`
	Seed      int64     `json:"seed"`
}

// Record is the persisted outcome of one search run: the best point
// found, its objective value and the number of evaluations spent.
//
// Only the best (point, value) pair is saved. The optimizer's internal
// state (population, velocities, etc.) is transient and never
// persisted, so a record describes a finished run, not a resumable
// one. Keeping the format optimizer-agnostic keeps records small and
// stable across optimizer implementations.
type Record struct {
	// RunID is the unique identifier for this search run
	RunID string `json:"runId"`

	// BestPoint is the candidate vector that achieved BestValue
	BestPoint []float64 `json:"bestPoint"`

	// BestValue is the objective value achieved by BestPoint
	BestValue float64 `json:"bestValue"`

	// Calls is the number of objective evaluations spent
	Calls int `json:"calls"`

	// Timestamp records when this record was created
	Timestamp time.Time `json:"timestamp"`

	// Config holds the run configuration for later inspection
	Config RunConfig `json:"config"`
}

// RecordInfo contains metadata about a record without the point data.
// Used for listing records without loading full parameter vectors.
type RecordInfo struct {
	RunID     string    `json:"runId"`
	BestValue float64   `json:"bestValue"`
	Calls     int       `json:"calls"`
	Timestamp time.Time `json:"timestamp"`
	Objective string    `json:"objective"`
	Dim       int       `json:"dim"`
}

// NewRecord creates a record from run results.
func NewRecord(runID string, bestPoint []float64, bestValue float64, calls int, config RunConfig) *Record {
	return &Record{
		RunID:     runID,
		BestPoint: bestPoint,
		BestValue: bestValue,
		Calls:     calls,
		Timestamp: time.Now(),
		Config:    config,
	}
}

// ToInfo converts a full Record to RecordInfo (metadata only).
func (r *Record) ToInfo() RecordInfo {
	return RecordInfo{
		RunID:     r.RunID,
		BestValue: r.BestValue,
		Calls:     r.Calls,
		Timestamp: r.Timestamp,
		Objective: r.Config.Objective,
		Dim:       len(r.BestPoint),
	}
}

// Validate checks if the record has valid data.
// Returns an error if any required field is missing or inconsistent.
func (r *Record) Validate() error {
	if r.RunID == "" {
		return &ValidationError{Field: "RunID", Reason: "cannot be empty"}
	}
	if len(r.BestPoint) == 0 {
		return &ValidationError{Field: "BestPoint", Reason: "cannot be empty"}
	}
	if r.Calls <= 0 {
		return &ValidationError{Field: "Calls", Reason: "must be positive"}
	}
	if r.Timestamp.IsZero() {
		return &ValidationError{Field: "Timestamp", Reason: "cannot be zero"}
	}
	if r.Config.Objective == "" {
		return &ValidationError{Field: "Config.Objective", Reason: "cannot be empty"}
	}
	if len(r.Config.Lower) != len(r.Config.Upper) {
		return &ValidationError{Field: "Config", Reason: "bound lengths must match"}
	}
	if r.Config.MaxCalls <= 0 {
		return &ValidationError{Field: "Config.MaxCalls", Reason: "must be positive"}
	}
	if r.Config.PopSize <= 0 {
		return &ValidationError{Field: "Config.PopSize", Reason: "must be positive"}
	}
	if len(r.BestPoint) != len(r.Config.Lower) {
		return &ValidationError{
			Field:  "BestPoint",
			Reason: fmt.Sprintf("length mismatch: %d point dimensions, %d bound dimensions", len(r.BestPoint), len(r.Config.Lower)),
		}
	}
	return nil
}

// ValidationError represents a record validation error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
