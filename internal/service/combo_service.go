package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// ComboShelf holds the book-combo list. Combos are read-mostly: the client
// never mutates them, it only fetches and projects.
type ComboShelf struct {
	mu      sync.Mutex
	repo    repository.StoreRepository
	combos  []models.BookCombo
	loading bool
	err     *api.APIError
}

func NewComboShelf(repo repository.StoreRepository) *ComboShelf {
	return &ComboShelf{repo: repo, combos: []models.BookCombo{}}
}

func (s *ComboShelf) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	combos, err := s.repo.GetBookCombos(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.AsAPIError(err)
		s.combos = []models.BookCombo{}
		return err
	}

	if combos == nil {
		combos = []models.BookCombo{}
	}
	s.combos = combos
	return nil
}

func (s *ComboShelf) Combos() []models.BookCombo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BookCombo, len(s.combos))
	copy(out, s.combos)
	return out
}

// Savings is a read-only projection of the aggregate discount across the
// shelf. A combo priced above its original price contributes zero.
func (s *ComboShelf) Savings() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, combo := range s.combos {
		if saving := combo.OriginalPrice - combo.FinalPrice; saving > 0 {
			total += saving
		}
	}
	return total
}

func (s *ComboShelf) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ComboShelf) Err() *api.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
