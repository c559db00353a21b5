package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"admin-world-client/internal/api"
	"admin-world-client/internal/config"
	"admin-world-client/internal/models"
	"admin-world-client/internal/repository"
	"admin-world-client/internal/service"
	"admin-world-client/pkg/logger"
	"admin-world-client/pkg/validator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables", nil)
	}

	cfg := config.New()
	logger.Init(cfg.LogLevel)
	validator.Init()

	logger.Info("Starting Administrative World client", map[string]interface{}{
		"api":         cfg.APIBaseURL,
		"environment": cfg.Environment,
	})

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	storeRepo := repository.NewStoreRepository(client)

	books := service.NewBookStore(storeRepo)
	books.SetFilters(models.ListFilters{Page: 1, Limit: 12, Sort: "price", Order: models.OrderAsc})

	combos := service.NewComboShelf(storeRepo)

	ctx := context.Background()
	if err := books.Fetch(ctx); err != nil {
		logger.Error(err, "Book store fetch failed", map[string]interface{}{
			"type": api.AsAPIError(err).Type,
		})
		os.Exit(1)
	}
	if err := combos.Fetch(ctx); err != nil {
		logger.Error(err, "Combo fetch failed", nil)
		os.Exit(1)
	}

	meta := books.Meta()
	logger.Info("Store loaded", map[string]interface{}{
		"books":       len(books.Books()),
		"page":        meta.CurrentPage,
		"totalPages":  meta.TotalPages,
		"combos":      len(combos.Combos()),
		"comboSaving": combos.Savings(),
	})
}
