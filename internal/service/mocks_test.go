package service

import (
	"context"
	"fmt"

	"admin-world-client/internal/models"
)

type mockCourseRepo struct {
	nextID int
	err    error

	addSectionCalls    int
	updateSectionCalls int
	deleteSectionCalls int
	addSubCalls        int
}

func (m *mockCourseRepo) assignID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s%d", prefix, m.nextID)
}

func (m *mockCourseRepo) CreateCourse(_ context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Course{ID: m.assignID("course"), Name: req.Name, Description: req.Description}, nil
}

func (m *mockCourseRepo) UpdateCourse(_ context.Context, req models.UpdateCourseRequest) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Course{ID: req.CourseID, Name: req.Name}, nil
}

func (m *mockCourseRepo) GetCourseDetails(_ context.Context, courseID string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Course{ID: courseID}, nil
}

func (m *mockCourseRepo) DeleteCourse(_ context.Context, _ string) error {
	return m.err
}

func (m *mockCourseRepo) AddSection(_ context.Context, req models.AddSectionRequest) (*models.Section, error) {
	m.addSectionCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &models.Section{ID: m.assignID("sec"), Name: req.SectionName}, nil
}

func (m *mockCourseRepo) UpdateSection(_ context.Context, req models.UpdateSectionRequest) (*models.Section, error) {
	m.updateSectionCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &models.Section{ID: req.SectionID, Name: req.SectionName}, nil
}

func (m *mockCourseRepo) DeleteSection(_ context.Context, _ models.DeleteSectionRequest) error {
	m.deleteSectionCalls++
	return m.err
}

func (m *mockCourseRepo) AddSubSection(_ context.Context, req models.AddSubSectionRequest) (*models.Subsection, error) {
	m.addSubCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &models.Subsection{ID: m.assignID("sub"), Title: req.Title, VideoURL: req.VideoURL}, nil
}

func (m *mockCourseRepo) UpdateSubSection(_ context.Context, req models.UpdateSubSectionRequest) (*models.Subsection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Subsection{ID: req.SubSectionID, Title: req.Title, VideoURL: req.VideoURL}, nil
}

func (m *mockCourseRepo) DeleteSubSection(_ context.Context, _ models.DeleteSubSectionRequest) error {
	return m.err
}

type mockStoreRepo struct {
	books  []models.Book
	meta   *models.PageMeta
	combos []models.BookCombo
	err    error
}

func (m *mockStoreRepo) GetAllBooks(_ context.Context, _ models.ListFilters) ([]models.Book, *models.PageMeta, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.books, m.meta, nil
}

func (m *mockStoreRepo) GetBookCombos(_ context.Context) ([]models.BookCombo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.combos, nil
}

type mockArticleRepo struct {
	saved *models.SaveArticleRequest
	err   error
}

func (m *mockArticleRepo) SaveArticle(_ context.Context, req models.SaveArticleRequest) (*models.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.saved = &req
	return &models.Article{
		ID:     "article1",
		Title:  req.Title,
		Slug:   req.Slug,
		Status: req.Status,
	}, nil
}

func (m *mockArticleRepo) GetArticles(_ context.Context, _ models.ListFilters) ([]models.Article, *models.PageMeta, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return []models.Article{}, nil, nil
}

func (m *mockArticleRepo) GetTopRatedCourses(_ context.Context, _ models.ListFilters) ([]models.RatedCourse, *models.PageMeta, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return []models.RatedCourse{}, nil, nil
}

type mockProgressRepo struct {
	updateErr     error
	percentage    float64
	percentageErr error

	updateCalls     int
	percentageCalls int
}

func (m *mockProgressRepo) UpdateCourseProgress(_ context.Context, _ models.UpdateProgressRequest) error {
	m.updateCalls++
	return m.updateErr
}

func (m *mockProgressRepo) GetProgressPercentage(_ context.Context, _ string) (float64, error) {
	m.percentageCalls++
	if m.percentageErr != nil {
		return 0, m.percentageErr
	}
	return m.percentage, nil
}

type mockReviewRepo struct {
	reviews []models.Review
	err     error
}

func (m *mockReviewRepo) GetCourseReviews(_ context.Context, _ string) ([]models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

func (m *mockReviewRepo) CreateReview(_ context.Context, req models.CreateReviewRequest) (*models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Review{ID: "rev1", CourseID: req.CourseID, Rating: req.Rating, Body: req.Body}, nil
}
