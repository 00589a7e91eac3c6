package server

import (
	"testing"
	"time"
)

func testConfig() JobConfig {
	return JobConfig{
		Objective: "sphere",
		Lower:     []float64{-10, -10},
		Upper:     []float64{10, 10},
		MaxCalls:  200,
		PopSize:   20,
		Seed:      42,
	}
}

func TestJobManager_CreateJob(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(testConfig())

	if job.ID == "" {
		t.Error("Job ID should not be empty")
	}

	if job.State != StatePending {
		t.Errorf("Initial state should be pending, got %s", job.State)
	}

	if job.Config.Objective != "sphere" {
		t.Errorf("Config not set correctly")
	}
}

func TestJobManager_GetJob(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(testConfig())

	retrieved, exists := jm.GetJob(job.ID)
	if !exists {
		t.Error("Job should exist")
	}

	if retrieved.ID != job.ID {
		t.Error("Retrieved wrong job")
	}

	_, exists = jm.GetJob("nonexistent")
	if exists {
		t.Error("Should not find nonexistent job")
	}
}

func TestJobManager_ListJobs(t *testing.T) {
	jm := NewJobManager()

	if len(jm.ListJobs()) != 0 {
		t.Error("Should start with no jobs")
	}

	jm.CreateJob(testConfig())
	jm.CreateJob(testConfig())

	jobs := jm.ListJobs()
	if len(jobs) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(jobs))
	}
}

func TestJobManager_UpdateJob(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(testConfig())

	err := jm.UpdateJob(job.ID, func(j *Job) {
		j.State = StateRunning
		j.Calls = 10
		j.BestValue = 123.45
	})

	if err != nil {
		t.Errorf("Update should succeed: %v", err)
	}

	updated, _ := jm.GetJob(job.ID)
	if updated.State != StateRunning {
		t.Error("State should be updated")
	}
	if updated.Calls != 10 {
		t.Error("Calls should be updated")
	}
	if updated.BestValue != 123.45 {
		t.Error("BestValue should be updated")
	}

	err = jm.UpdateJob("nonexistent", func(j *Job) {})
	if err == nil {
		t.Error("Update of nonexistent job should fail")
	}
}

func TestJobManager_GetJobReturnsSnapshot(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(testConfig())

	jm.UpdateJob(job.ID, func(j *Job) {
		j.BestPoint = []float64{1, 2}
		j.BestValue = 5
	})

	snapshot, _ := jm.GetJob(job.ID)

	// Worker-style in-place rewrite of the stored best point must not
	// show through a previously taken snapshot
	jm.UpdateJob(job.ID, func(j *Job) {
		j.BestPoint = append(j.BestPoint[:0], 9, 9)
		j.BestValue = 1
	})

	if snapshot.BestPoint[0] != 1 || snapshot.BestPoint[1] != 2 {
		t.Errorf("Snapshot best point mutated: %v", snapshot.BestPoint)
	}
	if snapshot.BestValue != 5 {
		t.Errorf("Snapshot best value mutated: %v", snapshot.BestValue)
	}

	// Writes through a snapshot must not reach the stored job
	snapshot.State = StateFailed
	stored, _ := jm.GetJob(job.ID)
	if stored.State == StateFailed {
		t.Error("Snapshot write leaked into the stored job")
	}
}

func TestJobManager_ThreadSafety(t *testing.T) {
	jm := NewJobManager()

	job := jm.CreateJob(testConfig())

	// Simulate concurrent updates
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(calls int) {
			jm.UpdateJob(job.ID, func(j *Job) {
				j.Calls = calls
				time.Sleep(1 * time.Millisecond)
			})
			done <- true
		}(i)
	}

	// Wait for all updates
	for i := 0; i < 10; i++ {
		<-done
	}

	// Should not crash - actual value depends on race
	_, exists := jm.GetJob(job.ID)
	if !exists {
		t.Error("Job should still exist after concurrent updates")
	}
}
