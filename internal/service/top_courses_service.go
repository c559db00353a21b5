package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// TopCourses lists the highest-rated courses for the landing surfaces.
type TopCourses struct {
	mu      sync.Mutex
	repo    repository.ArticleRepository
	filters models.ListFilters
	courses []models.RatedCourse
	loading bool
	err     *api.APIError
}

func NewTopCourses(repo repository.ArticleRepository) *TopCourses {
	filters := models.DefaultListFilters()
	filters.Sort = "rating"
	return &TopCourses{repo: repo, filters: filters, courses: []models.RatedCourse{}}
}

func (s *TopCourses) SetFilters(filters models.ListFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters.Normalize()
}

func (s *TopCourses) Fetch(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	courses, _, err := s.repo.GetTopRatedCourses(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.AsAPIError(err)
		s.courses = []models.RatedCourse{}
		return err
	}

	if courses == nil {
		courses = []models.RatedCourse{}
	}
	s.courses = courses
	return nil
}

func (s *TopCourses) Courses() []models.RatedCourse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RatedCourse, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *TopCourses) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TopCourses) Err() *api.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
