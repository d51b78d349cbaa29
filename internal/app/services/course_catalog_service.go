package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/helpers"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/pkg/validation"
)

// CatalogOptions tunes the public catalog
type CatalogOptions struct {
	PageSize      int
	SearchConfig  string
	CategoryScope string
}

// HomePage is one page of the catalog together with the category list
type HomePage struct {
	Categories []string
	Courses    []*models.Course
}

// CourseCatalogService defines the public catalog operations
type CourseCatalogService interface {
	GetHomePage(ctx context.Context, page int) (*HomePage, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	SearchCourses(ctx context.Context, search string, page int) ([]*models.Course, error)
	ListCategoryCourses(ctx context.Context, category string, page int) ([]*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CatalogCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.CatalogCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseCatalogServiceImpl implements the CourseCatalogService interface
type courseCatalogServiceImpl struct {
	store  CourseStore
	schema validation.Schema
	opts   CatalogOptions
}

// NewCourseCatalogService creates a new catalog service. Zero options fall
// back to 12 courses per page, the "english" search configuration and
// page-local categories.
func NewCourseCatalogService(store CourseStore, schema validation.Schema, opts CatalogOptions) CourseCatalogService {
	if opts.PageSize <= 0 || opts.PageSize > helpers.MaxPageSize {
		opts.PageSize = helpers.DefaultPageSize
	}
	if strings.TrimSpace(opts.SearchConfig) == "" {
		opts.SearchConfig = "english"
	}
	if opts.CategoryScope == "" {
		opts.CategoryScope = config.CategoryScopePage
	}

	return &courseCatalogServiceImpl{
		store:  store,
		schema: schema,
		opts:   opts,
	}
}

func (s *courseCatalogServiceImpl) page(ctx context.Context, operation string, filter repositories.CourseFilter, page int) ([]*models.Course, error) {
	if page < 1 {
		return nil, apperrors.ErrInvalidPages
	}

	offset, limit, ok := helpers.CalculateOffsetLimit(page, s.opts.PageSize)
	if !ok {
		// no table holds that many rows
		return []*models.Course{}, nil
	}

	return withStoreErrorHandling(ctx, operation, func(ctx context.Context) ([]*models.Course, error) {
		return s.store.ListCoursesPage(ctx, filter, offset, limit)
	})
}

// GetHomePage returns the requested page of courses and the category list.
// With the page scope the categories are those present on the page only.
func (s *courseCatalogServiceImpl) GetHomePage(ctx context.Context, page int) (*HomePage, error) {
	courses, err := s.page(ctx, "list home page", repositories.CourseFilter{}, page)
	if err != nil {
		return nil, err
	}

	var categories []string
	if s.opts.CategoryScope == config.CategoryScopeGlobal {
		categories, err = withStoreErrorHandling(ctx, "list categories", s.store.ListCategories)
		if err != nil {
			return nil, err
		}
		categories = helpers.DistinctSorted(categories)
	} else {
		names := make([]string, 0, len(courses))
		for _, c := range courses {
			names = append(names, c.Category)
		}
		categories = helpers.DistinctSorted(names)
	}

	return &HomePage{Categories: categories, Courses: courses}, nil
}

// GetCourse retrieves a single course, without enrollment data
func (s *courseCatalogServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	return withStoreErrorHandling(ctx, "get catalog course", func(ctx context.Context) (*models.Course, error) {
		return s.store.GetCourseByID(ctx, id, false)
	})
}

// SearchCourses matches every '+' or space separated term against course names
func (s *courseCatalogServiceImpl) SearchCourses(ctx context.Context, search string, page int) ([]*models.Course, error) {
	if page < 1 {
		return nil, apperrors.ErrInvalidPages
	}

	query := helpers.BuildTextQuery(search)
	if query == "" {
		return nil, apperrors.ErrSearchRequired
	}

	logger.FromContext(ctx).Debug().Str("query", query).Int("page", page).Msg("Searching courses")

	return s.page(ctx, "search courses", repositories.CourseFilter{
		TextQuery:    query,
		SearchConfig: s.opts.SearchConfig,
	}, page)
}

// ListCategoryCourses returns one page of courses in category (exact match)
func (s *courseCatalogServiceImpl) ListCategoryCourses(ctx context.Context, category string, page int) ([]*models.Course, error) {
	return s.page(ctx, "list category courses", repositories.CourseFilter{Category: &category}, page)
}

// CreateCourse validates and inserts the full catalog field set
func (s *courseCatalogServiceImpl) CreateCourse(ctx context.Context, req *dto.CatalogCourseRequest) (*models.Course, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	course, err := withStoreErrorHandling(ctx, "create catalog course", func(ctx context.Context) (*models.Course, error) {
		return s.store.CreateCourse(ctx, req.Fields(), models.WriteCatalog)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int64("courseID", course.ID).Msg("Catalog course created")
	return course, nil
}

// UpdateCourse validates and overwrites the full catalog field set
func (s *courseCatalogServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.CatalogCourseRequest) (*models.Course, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	return withStoreErrorHandling(ctx, "update catalog course", func(ctx context.Context) (*models.Course, error) {
		return s.store.UpdateCourse(ctx, id, req.Fields(), models.WriteCatalog)
	})
}

// DeleteCourse deletes a course by ID
func (s *courseCatalogServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := validID(id); err != nil {
		return err
	}

	return withStoreErrorHandlingErr(ctx, "delete catalog course", func(ctx context.Context) error {
		return s.store.DeleteCourse(ctx, id)
	})
}

func (s *courseCatalogServiceImpl) validate(ctx context.Context, req *dto.CatalogCourseRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty payload", apperrors.ErrValidationFailed)
	}
	if err := s.schema.Validate(req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("Catalog course payload failed validation")
		return err
	}
	return nil
}
