package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// ProgressTracker is the playback-side state for one enrolled course: the
// active subsection, the completed set, and the authoritative completion
// percentage. The percentage is always refetched from the server after a
// mutating call rather than derived locally, so client and server ledgers
// cannot drift.
type ProgressTracker struct {
	mu   sync.Mutex
	repo repository.ProgressRepository

	courseID   string
	active     string
	completed  []string
	percentage float64
	loading    bool
	err        *api.APIError
}

func NewProgressTracker(repo repository.ProgressRepository, courseID string) *ProgressTracker {
	return &ProgressTracker{
		repo:      repo,
		courseID:  courseID,
		completed: []string{},
	}
}

func (t *ProgressTracker) SetActive(subsectionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = subsectionID
}

func (t *ProgressTracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Seed installs the last known server state, e.g. when the player mounts.
func (t *ProgressTracker) Seed(completed []string, percentage float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed = t.completed[:0]
	for _, id := range completed {
		if !contains(t.completed, id) {
			t.completed = append(t.completed, id)
		}
	}
	t.percentage = percentage
}

// MarkComplete reports a finished subsection. The completed set grows only
// after the server confirms, so there is no rollback path; the follow-up
// percentage fetch is issued unconditionally on success.
func (t *ProgressTracker) MarkComplete(ctx context.Context, subsectionID string) error {
	t.mu.Lock()
	courseID := t.courseID
	t.loading = true
	t.err = nil
	t.mu.Unlock()

	req := models.UpdateProgressRequest{CourseID: courseID, SubsectionID: subsectionID}
	if err := t.repo.UpdateCourseProgress(ctx, req); err != nil {
		t.mu.Lock()
		t.loading = false
		t.err = api.AsAPIError(err)
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	if !contains(t.completed, subsectionID) {
		t.completed = append(t.completed, subsectionID)
	}
	t.mu.Unlock()

	percentage, err := t.repo.GetProgressPercentage(ctx, courseID)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		t.err = api.AsAPIError(err)
		return err
	}
	t.percentage = percentage
	return nil
}

// Refresh pulls the authoritative percentage without mutating anything.
func (t *ProgressTracker) Refresh(ctx context.Context) error {
	t.mu.Lock()
	courseID := t.courseID
	t.mu.Unlock()

	percentage, err := t.repo.GetProgressPercentage(ctx, courseID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.err = api.AsAPIError(err)
		return err
	}
	t.percentage = percentage
	t.err = nil
	return nil
}

func (t *ProgressTracker) Completed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.completed))
	copy(out, t.completed)
	return out
}

func (t *ProgressTracker) IsComplete(subsectionID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return contains(t.completed, subsectionID)
}

func (t *ProgressTracker) Percentage() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percentage
}

func (t *ProgressTracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *ProgressTracker) Err() *api.APIError {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
