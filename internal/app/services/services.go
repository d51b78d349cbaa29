package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/coursehub/backend/internal/pkg/logger"
)

// Services defined in this package:
// - CourseAdminService: management CRUD over courses
// - CourseCatalogService: public browsing, search and the catalog write variants

// CourseStore is the persistence the course services need.
// *repositories.CourseRepository implements it.
type CourseStore interface {
	GetCourseByID(ctx context.Context, id int64, withStudents bool) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	ListCoursesPage(ctx context.Context, filter repositories.CourseFilter, offset, limit uint64) ([]*models.Course, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateCourse(ctx context.Context, fields models.CourseFields, set models.WriteSet) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, fields models.CourseFields, set models.WriteSet) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

var _ CourseStore = (*repositories.CourseRepository)(nil)

// withStoreErrorHandling runs a store call and maps its failure onto the
// application errors the HTTP layer understands. Every course operation goes
// through it so all handlers share one policy:
//   - missing row            -> apperrors.ErrCourseNotFound
//   - rejected by the store  -> apperrors.ErrStoreRejected (cause logged only)
//   - anything else          -> wrapped, reported as an internal error
func withStoreErrorHandling[T any](ctx context.Context, operation string, op func(context.Context) (T, error)) (T, error) {
	result, err := op(ctx)
	if err == nil {
		return result, nil
	}

	var zero T
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return zero, apperrors.ErrCourseNotFound
	case dberrors.IsClientError(err):
		log.Warn().Err(err).Str("operation", operation).Msg("Store rejected course operation")
		return zero, fmt.Errorf("%w: %s", apperrors.ErrStoreRejected, operation)
	case errors.Is(err, context.Canceled):
		log.Debug().Str("operation", operation).Msg("Course operation canceled by client")
		return zero, err
	default:
		log.Error().Err(err).Str("operation", operation).Msg("Course store failure")
		return zero, fmt.Errorf("error during %s: %w", operation, err)
	}
}

// withStoreErrorHandlingErr is withStoreErrorHandling for calls without a result.
func withStoreErrorHandlingErr(ctx context.Context, operation string, op func(context.Context) error) error {
	_, err := withStoreErrorHandling(ctx, operation, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// validID rejects identifiers that cannot name a row.
func validID(id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidID
	}
	return nil
}
