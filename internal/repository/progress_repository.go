package repository

import (
	"context"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

type ProgressRepository interface {
	UpdateCourseProgress(ctx context.Context, req models.UpdateProgressRequest) error
	GetProgressPercentage(ctx context.Context, courseID string) (float64, error)
}

type progressRepository struct {
	client *api.Client
}

func NewProgressRepository(client *api.Client) ProgressRepository {
	return &progressRepository{client: client}
}

func (r *progressRepository) UpdateCourseProgress(ctx context.Context, req models.UpdateProgressRequest) error {
	_, err := r.client.Post(ctx, "/courses/updateCourseProgress", req, nil)
	return err
}

func (r *progressRepository) GetProgressPercentage(ctx context.Context, courseID string) (float64, error) {
	var percentage float64
	body := map[string]string{"courseId": courseID}
	if _, err := r.client.Post(ctx, "/courses/getProgressPercentage", body, &percentage); err != nil {
		return 0, err
	}
	return percentage, nil
}
