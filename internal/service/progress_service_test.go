package service

import (
	"context"
	"testing"

	"admin-world-client/internal/api"
)

func TestMarkCompleteAppendsOnceAndRefetchesPercentage(t *testing.T) {
	repo := &mockProgressRepo{percentage: 25}
	tracker := NewProgressTracker(repo, "course1")

	if err := tracker.MarkComplete(context.Background(), "sub123"); err != nil {
		t.Fatalf("mark complete: %v", err)
	}

	completed := tracker.Completed()
	if len(completed) != 1 || completed[0] != "sub123" {
		t.Fatalf("expected completed to contain sub123 exactly once, got %v", completed)
	}
	if repo.percentageCalls != 1 {
		t.Fatalf("expected exactly one percentage fetch, got %d", repo.percentageCalls)
	}
	if tracker.Percentage() != 25 {
		t.Fatalf("expected server percentage 25, got %v", tracker.Percentage())
	}
}

func TestMarkCompleteIsDeduplicated(t *testing.T) {
	repo := &mockProgressRepo{percentage: 50}
	tracker := NewProgressTracker(repo, "course1")

	_ = tracker.MarkComplete(context.Background(), "sub123")
	_ = tracker.MarkComplete(context.Background(), "sub123")

	if completed := tracker.Completed(); len(completed) != 1 {
		t.Fatalf("repeat completion must not duplicate, got %v", completed)
	}
}

func TestMarkCompleteFailureDoesNotTouchCompletedSet(t *testing.T) {
	repo := &mockProgressRepo{updateErr: api.NewServerError(500, "ledger unavailable")}
	tracker := NewProgressTracker(repo, "course1")

	if err := tracker.MarkComplete(context.Background(), "sub123"); err == nil {
		t.Fatalf("expected error")
	}
	if len(tracker.Completed()) != 0 {
		t.Fatalf("nothing mutates before the server confirms")
	}
	if repo.percentageCalls != 0 {
		t.Fatalf("no percentage fetch may follow a failed update")
	}
	if tracker.Err() == nil || tracker.Err().Message != "ledger unavailable" {
		t.Fatalf("expected server message in slice state, got %+v", tracker.Err())
	}
}

func TestMarkCompletePercentageFailureKeepsCompletion(t *testing.T) {
	repo := &mockProgressRepo{percentageErr: api.NewServerError(500, "busy")}
	tracker := NewProgressTracker(repo, "course1")

	if err := tracker.MarkComplete(context.Background(), "sub123"); err == nil {
		t.Fatalf("expected error from percentage fetch")
	}

	// The completion itself was confirmed; only the follow-up read failed.
	if !tracker.IsComplete("sub123") {
		t.Fatalf("confirmed completion must stay")
	}
}

func TestSeedDeduplicates(t *testing.T) {
	tracker := NewProgressTracker(&mockProgressRepo{}, "course1")

	tracker.Seed([]string{"a", "b", "a"}, 40)

	if completed := tracker.Completed(); len(completed) != 2 {
		t.Fatalf("seed must de-duplicate, got %v", completed)
	}
	if tracker.Percentage() != 40 {
		t.Fatalf("seeded percentage lost")
	}
}
