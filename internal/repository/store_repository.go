package repository

import (
	"context"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

type StoreRepository interface {
	GetAllBooks(ctx context.Context, filters models.ListFilters) ([]models.Book, *models.PageMeta, error)
	GetBookCombos(ctx context.Context) ([]models.BookCombo, error)
}

type storeRepository struct {
	client *api.Client
}

func NewStoreRepository(client *api.Client) StoreRepository {
	return &storeRepository{client: client}
}

func (r *storeRepository) GetAllBooks(ctx context.Context, filters models.ListFilters) ([]models.Book, *models.PageMeta, error) {
	var books []models.Book
	meta, err := r.client.PostQuery(ctx, "/store/getAllBooks", filters.Query(), &books)
	if err != nil {
		return nil, nil, err
	}
	return books, meta, nil
}

func (r *storeRepository) GetBookCombos(ctx context.Context) ([]models.BookCombo, error) {
	var combos []models.BookCombo
	if _, err := r.client.Get(ctx, "/store/getBookCombos", nil, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}
