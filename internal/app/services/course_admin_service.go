package services

import (
	"context"
	"fmt"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/pkg/validation"
)

// CourseAdminService defines the management operations over courses
type CourseAdminService interface {
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseAdminServiceImpl implements the CourseAdminService interface
type courseAdminServiceImpl struct {
	store  CourseStore
	schema validation.Schema
}

// NewCourseAdminService creates a new admin course service.
// schema is applied to create payloads only; admin updates overwrite unconditionally.
func NewCourseAdminService(store CourseStore, schema validation.Schema) CourseAdminService {
	return &courseAdminServiceImpl{
		store:  store,
		schema: schema,
	}
}

// GetCourse retrieves a course with its enrolled students
func (s *courseAdminServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	return withStoreErrorHandling(ctx, "get course", func(ctx context.Context) (*models.Course, error) {
		return s.store.GetCourseByID(ctx, id, true)
	})
}

// ListCourses retrieves every course
func (s *courseAdminServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return withStoreErrorHandling(ctx, "list courses", s.store.ListCourses)
}

// CreateCourse validates and inserts the base course fields
func (s *courseAdminServiceImpl) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	if err := s.schema.Validate(req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("Admin course payload failed validation")
		return nil, err
	}

	course, err := withStoreErrorHandling(ctx, "create course", func(ctx context.Context) (*models.Course, error) {
		return s.store.CreateCourse(ctx, req.Fields(), models.WriteBase)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int64("courseID", course.ID).Msg("Course created")
	return course, nil
}

// UpdateCourse overwrites the base course fields
func (s *courseAdminServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: empty payload", apperrors.ErrValidationFailed)
	}

	return withStoreErrorHandling(ctx, "update course", func(ctx context.Context) (*models.Course, error) {
		return s.store.UpdateCourse(ctx, id, req.Fields(), models.WriteBase)
	})
}

// DeleteCourse deletes a course by ID
func (s *courseAdminServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validID(id); err != nil {
		return err
	}

	return withStoreErrorHandlingErr(ctx, "delete course", func(ctx context.Context) error {
		return s.store.DeleteCourse(ctx, id)
	})
}
