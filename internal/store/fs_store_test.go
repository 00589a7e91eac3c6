package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestStore creates a temporary directory and returns an FSStore for testing.
func setupTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()

	tempDir := t.TempDir() // Automatically cleaned up after test
	store, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	return store, tempDir
}

// createTestRecord creates a record with test data.
func createTestRecord(runID string) *Record {
	return &Record{
		RunID:     runID,
		BestPoint: []float64{0.12, -0.03, 0.8},
		BestValue: 0.0234,
		Calls:     2000,
		Timestamp: time.Now(),
		Config: RunConfig{
			Objective: "sphere",
			Lower:     []float64{-10, -10, -10},
			Upper:     []float64{10, 10, 10},
			MaxCalls:  2000,
			PopSize:   20,
			Seed:      42,
		},
	}
}

func TestNewFSStore(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewFSStore(tempDir)
	if err != nil {
		t.Fatalf("NewFSStore failed: %v", err)
	}

	if store == nil {
		t.Fatal("Expected non-nil store")
	}

	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		t.Fatal("Base directory was not created")
	}
}

func TestSaveRecord(t *testing.T) {
	store, tempDir := setupTestStore(t)

	runID := "test-run-123"
	record := createTestRecord(runID)

	if err := store.SaveRecord(runID, record); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	// Verify record file exists
	expectedPath := filepath.Join(tempDir, "runs", runID, "record.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Fatalf("Record file was not created at %s", expectedPath)
	}

	// Verify no temp file remains
	tempPath := expectedPath + ".tmp"
	if _, err := os.Stat(tempPath); !os.IsNotExist(err) {
		t.Errorf("Temp file should not exist after save: %s", tempPath)
	}
}

func TestSaveRecord_EmptyRunID(t *testing.T) {
	store, _ := setupTestStore(t)

	if err := store.SaveRecord("", createTestRecord("any-id")); err == nil {
		t.Fatal("Expected error for empty runID")
	}
}

func TestSaveRecord_NilRecord(t *testing.T) {
	store, _ := setupTestStore(t)

	if err := store.SaveRecord("test-run", nil); err == nil {
		t.Fatal("Expected error for nil record")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)

	runID := "test-run-roundtrip"
	record := createTestRecord(runID)

	if err := store.SaveRecord(runID, record); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	loaded, err := store.LoadRecord(runID)
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}

	if loaded.RunID != record.RunID {
		t.Errorf("RunID mismatch: expected %s, got %s", record.RunID, loaded.RunID)
	}
	if loaded.BestValue != record.BestValue {
		t.Errorf("BestValue mismatch: expected %f, got %f", record.BestValue, loaded.BestValue)
	}
	if loaded.Calls != record.Calls {
		t.Errorf("Calls mismatch: expected %d, got %d", record.Calls, loaded.Calls)
	}
	if len(loaded.BestPoint) != len(record.BestPoint) {
		t.Fatalf("BestPoint length mismatch: expected %d, got %d", len(record.BestPoint), len(loaded.BestPoint))
	}
	for i := range record.BestPoint {
		if loaded.BestPoint[i] != record.BestPoint[i] {
			t.Errorf("BestPoint[%d] mismatch: expected %f, got %f", i, record.BestPoint[i], loaded.BestPoint[i])
		}
	}
	if loaded.Config.Objective != record.Config.Objective {
		t.Errorf("Objective mismatch: expected %s, got %s", record.Config.Objective, loaded.Config.Objective)
	}
}

func TestSaveRecord_Overwrite(t *testing.T) {
	store, _ := setupTestStore(t)

	runID := "test-run-overwrite"
	record1 := createTestRecord(runID)
	record1.BestValue = 0.5

	record2 := createTestRecord(runID)
	record2.BestValue = 0.1

	if err := store.SaveRecord(runID, record1); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := store.SaveRecord(runID, record2); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, err := store.LoadRecord(runID)
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if loaded.BestValue != 0.1 {
		t.Errorf("Expected overwritten value 0.1, got %f", loaded.BestValue)
	}
}

func TestLoadRecord_NotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.LoadRecord("missing-run")
	if err == nil {
		t.Fatal("Expected error for missing record")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListRecords(t *testing.T) {
	store, _ := setupTestStore(t)

	// Empty store lists no records
	infos, err := store.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("Expected 0 records, got %d", len(infos))
	}

	for _, runID := range []string{"run-a", "run-b", "run-c"} {
		if err := store.SaveRecord(runID, createTestRecord(runID)); err != nil {
			t.Fatalf("SaveRecord %s failed: %v", runID, err)
		}
	}

	infos, err = store.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(infos))
	}

	for _, info := range infos {
		if info.Objective != "sphere" {
			t.Errorf("Expected objective sphere, got %s", info.Objective)
		}
		if info.Dim != 3 {
			t.Errorf("Expected dim 3, got %d", info.Dim)
		}
	}
}

func TestDeleteRecord(t *testing.T) {
	store, tempDir := setupTestStore(t)

	runID := "test-run-delete"
	if err := store.SaveRecord(runID, createTestRecord(runID)); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	if err := store.DeleteRecord(runID); err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}

	runDir := filepath.Join(tempDir, "runs", runID)
	if _, err := os.Stat(runDir); !os.IsNotExist(err) {
		t.Errorf("Run directory should be removed: %s", runDir)
	}

	// Deleting again reports not found
	err := store.DeleteRecord(runID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
