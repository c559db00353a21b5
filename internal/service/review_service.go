package service

import (
	"context"
	"strings"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// CourseReviews holds the review list for one course and gates the
// write-review action. The at-most-one-review check here is a convenience for
// the view layer; the backend remains the enforcement point.
type CourseReviews struct {
	mu       sync.Mutex
	repo     repository.ReviewRepository
	courseID string
	reviews  []models.Review
	loading  bool
	err      *api.APIError
}

func NewCourseReviews(repo repository.ReviewRepository) *CourseReviews {
	return &CourseReviews{repo: repo, reviews: []models.Review{}}
}

func (s *CourseReviews) Load(ctx context.Context, courseID string) error {
	s.mu.Lock()
	s.courseID = courseID
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	reviews, err := s.repo.GetCourseReviews(ctx, courseID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.AsAPIError(err)
		s.reviews = []models.Review{}
		return err
	}

	if reviews == nil {
		reviews = []models.Review{}
	}
	s.reviews = reviews
	return nil
}

// CanReview reports whether the user has no review on the loaded course yet.
func (s *CourseReviews) CanReview(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, review := range s.reviews {
		if review.UserID == userID {
			return false
		}
	}
	return true
}

// Create validates before dispatch and appends to the local list only after
// the server confirms.
func (s *CourseReviews) Create(ctx context.Context, rating int, body string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, newValidationError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(body) == "" {
		return nil, newValidationError("review text is required")
	}

	s.mu.Lock()
	courseID := s.courseID
	s.mu.Unlock()

	req := models.CreateReviewRequest{CourseID: courseID, Rating: rating, Body: body}
	review, err := s.repo.CreateReview(ctx, req)
	if err != nil {
		s.mu.Lock()
		s.err = api.AsAPIError(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, *review)
	s.err = nil
	return review, nil
}

func (s *CourseReviews) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *CourseReviews) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CourseReviews) Err() *api.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
