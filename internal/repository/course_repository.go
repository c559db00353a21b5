package repository

import (
	"context"

	"admin-world-client/internal/api"
	"admin-world-client/internal/models"
)

// CourseRepository is the client's view of the course aggregate. The backend
// is the storage; every method is one round trip.
type CourseRepository interface {
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, req models.UpdateCourseRequest) (*models.Course, error)
	GetCourseDetails(ctx context.Context, courseID string) (*models.Course, error)
	DeleteCourse(ctx context.Context, courseID string) error

	AddSection(ctx context.Context, req models.AddSectionRequest) (*models.Section, error)
	UpdateSection(ctx context.Context, req models.UpdateSectionRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, req models.DeleteSectionRequest) error

	AddSubSection(ctx context.Context, req models.AddSubSectionRequest) (*models.Subsection, error)
	UpdateSubSection(ctx context.Context, req models.UpdateSubSectionRequest) (*models.Subsection, error)
	DeleteSubSection(ctx context.Context, req models.DeleteSubSectionRequest) error
}

type courseRepository struct {
	client *api.Client
}

func NewCourseRepository(client *api.Client) CourseRepository {
	return &courseRepository{client: client}
}

func (r *courseRepository) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if _, err := r.client.Post(ctx, "/courses/createCourse", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, req models.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if _, err := r.client.Post(ctx, "/courses/editCourse", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetCourseDetails(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	body := map[string]string{"courseId": courseID}
	if _, err := r.client.Post(ctx, "/courses/getCourseDetails", body, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) DeleteCourse(ctx context.Context, courseID string) error {
	body := map[string]string{"courseId": courseID}
	_, err := r.client.Post(ctx, "/courses/deleteCourse", body, nil)
	return err
}

func (r *courseRepository) AddSection(ctx context.Context, req models.AddSectionRequest) (*models.Section, error) {
	var section models.Section
	if _, err := r.client.Post(ctx, "/courses/addSection", req, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *courseRepository) UpdateSection(ctx context.Context, req models.UpdateSectionRequest) (*models.Section, error) {
	var section models.Section
	if _, err := r.client.Post(ctx, "/courses/updateSection", req, &section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *courseRepository) DeleteSection(ctx context.Context, req models.DeleteSectionRequest) error {
	_, err := r.client.Post(ctx, "/courses/deleteSection", req, nil)
	return err
}

func (r *courseRepository) AddSubSection(ctx context.Context, req models.AddSubSectionRequest) (*models.Subsection, error) {
	var sub models.Subsection
	if _, err := r.client.Post(ctx, "/courses/addSubSection", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *courseRepository) UpdateSubSection(ctx context.Context, req models.UpdateSubSectionRequest) (*models.Subsection, error) {
	var sub models.Subsection
	if _, err := r.client.Post(ctx, "/courses/updateSubSection", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *courseRepository) DeleteSubSection(ctx context.Context, req models.DeleteSubSectionRequest) error {
	_, err := r.client.Post(ctx, "/courses/deleteSubSection", req, nil)
	return err
}
