package repository

import (
	"context"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

type ReviewRepository interface {
	GetCourseReviews(ctx context.Context, courseID string) ([]models.Review, error)
	CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error)
}

type reviewRepository struct {
	client *api.Client
}

func NewReviewRepository(client *api.Client) ReviewRepository {
	return &reviewRepository{client: client}
}

func (r *reviewRepository) GetCourseReviews(ctx context.Context, courseID string) ([]models.Review, error) {
	var reviews []models.Review
	body := map[string]string{"courseId": courseID}
	if _, err := r.client.Post(ctx, "/courses/getReviews", body, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if _, err := r.client.Post(ctx, "/courses/createRating", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
