package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// BookStore is the book-list slice: current filters, the last successfully
// fetched page, and request lifecycle flags. Failures are kept as data; the
// slice never panics past its boundary.
type BookStore struct {
	mu      sync.Mutex
	repo    repository.StoreRepository
	filters models.ListFilters
	books   []models.Book
	meta    models.Pagination
	loading bool
	err     *api.APIError
}

func NewBookStore(repo repository.StoreRepository) *BookStore {
	return &BookStore{
		repo:    repo,
		filters: models.DefaultListFilters(),
		books:   []models.Book{},
	}
}

// SetFilters stores the normalized filters. Valid values pass through
// unchanged; out-of-range values are clamped rather than rejected so
// malformed deep links degrade gracefully.
func (s *BookStore) SetFilters(filters models.ListFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters.Normalize()
}

func (s *BookStore) Filters() models.ListFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Fetch replaces the item list and pagination metadata wholesale. On failure
// the list is emptied and the normalized error retained for the view layer.
func (s *BookStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	books, meta, err := s.repo.GetAllBooks(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.AsAPIError(err)
		s.books = []models.Book{}
		s.meta = models.Pagination{}
		return err
	}

	if books == nil {
		books = []models.Book{}
	}
	s.books = books
	s.meta = models.ResolvePagination(meta, len(books), filters.Page, filters.Limit)
	return nil
}

func (s *BookStore) Books() []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *BookStore) Meta() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func (s *BookStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BookStore) Err() *api.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
