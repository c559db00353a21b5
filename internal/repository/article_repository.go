package repository

import (
	"context"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

type ArticleRepository interface {
	SaveArticle(ctx context.Context, req models.SaveArticleRequest) (*models.Article, error)
	GetArticles(ctx context.Context, filters models.ListFilters) ([]models.Article, *models.PageMeta, error)
	GetTopRatedCourses(ctx context.Context, filters models.ListFilters) ([]models.RatedCourse, *models.PageMeta, error)
}

type articleRepository struct {
	client *api.Client
}

func NewArticleRepository(client *api.Client) ArticleRepository {
	return &articleRepository{client: client}
}

// SaveArticle creates when the request carries no id and updates otherwise;
// the backend routes on presence of the id.
func (r *articleRepository) SaveArticle(ctx context.Context, req models.SaveArticleRequest) (*models.Article, error) {
	var article models.Article
	path := "/articles/createArticle"
	if req.ID != "" {
		path = "/articles/editArticle"
	}
	if _, err := r.client.Post(ctx, path, req, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetArticles(ctx context.Context, filters models.ListFilters) ([]models.Article, *models.PageMeta, error) {
	var articles []models.Article
	meta, err := r.client.Get(ctx, "/articles/getAllArticles", filters.Query(), &articles)
	if err != nil {
		return nil, nil, err
	}
	return articles, meta, nil
}

func (r *articleRepository) GetTopRatedCourses(ctx context.Context, filters models.ListFilters) ([]models.RatedCourse, *models.PageMeta, error) {
	var courses []models.RatedCourse
	meta, err := r.client.Get(ctx, "/courses/getTopRated", filters.Query(), &courses)
	if err != nil {
		return nil, nil, err
	}
	return courses, meta, nil
}
