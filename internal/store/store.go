package store

// Store defines the interface for run record persistence.
// Implementations must be thread-safe and handle concurrent access gracefully.
//
// Error handling conventions:
//   - Return nil error on success
//   - Return ErrNotFound if a record doesn't exist (for Load/Delete)
//   - Return descriptive errors for I/O, serialization, or validation failures
//   - Wrap underlying errors with context using fmt.Errorf("context: %w", err)
type Store interface {
	// SaveRecord atomically saves the record for the given run.
	// An existing record for this runID is overwritten. Implementations
	// should use atomic write strategies (e.g., temp file + rename) to
	// prevent corruption in case of failures.
	SaveRecord(runID string, record *Record) error

	// LoadRecord retrieves the record for the given run.
	// Returns ErrNotFound if no record exists for this runID.
	LoadRecord(runID string) (*Record, error)

	// ListRecords returns metadata for all available records.
	// The returned slice may be empty if no records exist.
	ListRecords() ([]RecordInfo, error)

	// DeleteRecord removes the record and all associated artifacts
	// (record.json and trace.jsonl) for the given run.
	// Returns ErrNotFound if no record exists for this runID.
	DeleteRecord(runID string) error
}

// ErrNotFound is returned when a requested record does not exist.
// Use errors.Is(err, ErrNotFound) to check for this error.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents a missing record error.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	if e.RunID != "" {
		return "record not found: " + e.RunID
	}
	return "record not found"
}

func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}
