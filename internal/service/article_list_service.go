package service

import (
	"context"
	"sync"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
)

// ArticleList is the published-articles listing slice.
type ArticleList struct {
	mu       sync.Mutex
	repo     repository.ArticleRepository
	filters  models.ListFilters
	articles []models.Article
	meta     models.Pagination
	loading  bool
	err      *api.APIError
}

func NewArticleList(repo repository.ArticleRepository) *ArticleList {
	return &ArticleList{
		repo:     repo,
		filters:  models.DefaultListFilters(),
		articles: []models.Article{},
	}
}

func (s *ArticleList) SetFilters(filters models.ListFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters.Normalize()
}

func (s *ArticleList) Filters() models.ListFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *ArticleList) Fetch(ctx context.Context) error {
	s.mu.Lock()
	filters := s.filters
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	articles, meta, err := s.repo.GetArticles(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.AsAPIError(err)
		s.articles = []models.Article{}
		s.meta = models.Pagination{}
		return err
	}

	if articles == nil {
		articles = []models.Article{}
	}
	s.articles = articles
	s.meta = models.ResolvePagination(meta, len(articles), filters.Page, filters.Limit)
	return nil
}

func (s *ArticleList) Articles() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *ArticleList) Meta() models.Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func (s *ArticleList) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ArticleList) Err() *api.APIError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
