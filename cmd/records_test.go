package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/optbridge/internal/store"
)

func TestGetDirSize(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	content := []byte("Hello, World!")
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	size, err := getDirSize(tmpDir)
	if err != nil {
		t.Fatalf("getDirSize failed: %v", err)
	}

	if size < int64(len(content)) {
		t.Errorf("Expected size >= %d, got %d", len(content), size)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, tt := range tests {
		result := formatBytes(tt.bytes)
		if result != tt.expected {
			t.Errorf("formatBytes(%d) = %s, expected %s", tt.bytes, result, tt.expected)
		}
	}
}

func TestRecordsListCommand_NoRecords(t *testing.T) {
	tmpDir := t.TempDir()

	originalDataDir := recordDataDir
	recordDataDir = tmpDir
	defer func() { recordDataDir = originalDataDir }()

	if err := runListRecords(nil, nil); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRecordsListCommand_WithRecords(t *testing.T) {
	tmpDir := t.TempDir()

	recordStore, err := store.NewFSStore(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	config := store.RunConfig{
		Objective: "sphere",
		Lower:     []float64{-5, -5},
		Upper:     []float64{5, 5},
		MaxCalls:  1000,
		PopSize:   20,
		Seed:      42,
	}
	record := store.NewRecord("test-run-id", []float64{0.1, -0.2}, 0.05, 1000, config)

	if err := recordStore.SaveRecord("test-run-id", record); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	originalDataDir := recordDataDir
	recordDataDir = tmpDir
	defer func() { recordDataDir = originalDataDir }()

	if err := runListRecords(nil, nil); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRecordsShowCommand_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	originalDataDir := recordDataDir
	recordDataDir = tmpDir
	defer func() { recordDataDir = originalDataDir }()

	if err := runShowRecord(nil, []string{"no-such-run"}); err == nil {
		t.Error("Expected error for missing record")
	}
}

func TestRecordsDeleteCommand(t *testing.T) {
	tmpDir := t.TempDir()

	recordStore, err := store.NewFSStore(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	config := store.RunConfig{
		Objective: "sphere",
		Lower:     []float64{-5},
		Upper:     []float64{5},
		MaxCalls:  100,
		PopSize:   10,
		Seed:      1,
	}
	record := store.NewRecord("doomed-run", []float64{0.3}, 0.09, 100, config)

	if err := recordStore.SaveRecord("doomed-run", record); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	originalDataDir := recordDataDir
	recordDataDir = tmpDir
	defer func() { recordDataDir = originalDataDir }()

	if err := runDeleteRecord(nil, []string{"doomed-run"}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if _, err := recordStore.LoadRecord("doomed-run"); err == nil {
		t.Error("Expected record to be deleted")
	}
}
