package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCourseNotFound is returned when no course row matches.
var ErrCourseNotFound = ErrNotFound

// courseColumns are selected for every course query, in models.Course order.
var courseColumns = []string{
	"id", "name", "category", "course_desc", "course_detail", "course_cover_url",
	"guide_url", "course_material", "instructor_id", "max_student", "curr_student",
	"created_at", "updated_at",
}

// CourseFilter narrows a paginated course listing. The zero value matches every course.
type CourseFilter struct {
	// Category filters by exact, case-sensitive equality when non-nil
	Category *string
	// TextQuery is a to_tsquery expression matched against the course name
	TextQuery string
	// SearchConfig is the PostgreSQL text search configuration, e.g. "english"
	SearchConfig string
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).From("courses")
}

// GetCourseByID retrieves a course by ID, optionally with its enrolled students
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64, withStudents bool) (*models.Course, error) {
	sql, args, err := r.selectCourses().
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing get course query")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	course, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Course])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	if withStudents {
		students, err := r.listEnrolledStudents(ctx, id)
		if err != nil {
			return nil, err
		}
		course.Students = students
	}

	return course, nil
}

// listEnrolledStudents returns the students enrolled in a course, credentials excluded
func (r *CourseRepository) listEnrolledStudents(ctx context.Context, courseID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("s.id", "s.username", "s.email", "s.first_name", "s.last_name", "s.phone_number").
		From("students s").
		Join("course_enrollments ce ON ce.student_id = s.id").
		Where(squirrel.Eq{"ce.course_id": courseID}).
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrolled students SQL")
		return nil, fmt.Errorf("failed to build enrolled students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing enrolled students query")
		return nil, fmt.Errorf("error querying enrolled students: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.Student])
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error scanning enrolled students")
		return nil, fmt.Errorf("error scanning enrolled students: %w", err)
	}

	return students, nil
}

// ListCourses retrieves every course in primary key order
func (r *CourseRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.selectCourses().
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	return r.queryCourses(ctx, sql, args)
}

// ListCoursesPage retrieves one window of courses matching filter, in primary key order
func (r *CourseRepository) ListCoursesPage(ctx context.Context, filter CourseFilter, offset, limit uint64) ([]*models.Course, error) {
	builder := r.selectCourses()

	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.TextQuery != "" {
		builder = builder.Where(
			"to_tsvector(?::regconfig, name) @@ to_tsquery(?::regconfig, ?)",
			filter.SearchConfig, filter.SearchConfig, filter.TextQuery,
		)
	}

	sql, args, err := builder.
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses page SQL")
		return nil, fmt.Errorf("failed to build list courses page query: %w", err)
	}

	return r.queryCourses(ctx, sql, args)
}

func (r *CourseRepository) queryCourses(ctx context.Context, sql string, args []interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}

	courses, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.Course])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning course rows")
		return nil, fmt.Errorf("error scanning course rows: %w", err)
	}

	return courses, nil
}

// ListCategories returns every distinct category, sorted
func (r *CourseRepository) ListCategories(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT category").
		From("courses").
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list categories SQL")
		return nil, fmt.Errorf("failed to build list categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list categories query")
		return nil, fmt.Errorf("error querying categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning category rows")
		return nil, fmt.Errorf("error scanning categories: %w", err)
	}

	return categories, nil
}

// writeMap maps the fields selected by set onto their columns
func writeMap(fields models.CourseFields, set models.WriteSet) map[string]interface{} {
	values := map[string]interface{}{
		"name":          fields.Name,
		"category":      fields.Category,
		"course_desc":   fields.CourseDesc,
		"instructor_id": fields.InstructorID,
	}
	if set == models.WriteCatalog {
		values["course_detail"] = fields.CourseDetail
		values["course_cover_url"] = fields.CourseCoverURL
		values["guide_url"] = fields.GuideURL
		values["course_material"] = fields.CourseMaterial
		values["max_student"] = fields.MaxStudent
		values["curr_student"] = fields.CurrStudent
	}
	return values
}

// CreateCourse inserts a course and returns the stored row
func (r *CourseRepository) CreateCourse(ctx context.Context, fields models.CourseFields, set models.WriteSet) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		SetMap(writeMap(fields, set)).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	course, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Course])
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning created course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// UpdateCourse overwrites the fields selected by set and returns the stored row
func (r *CourseRepository) UpdateCourse(ctx context.Context, id int64, fields models.CourseFields, set models.WriteSet) (*models.Course, error) {
	sql, args, err := r.sb.Update("courses").
		SetMap(writeMap(fields, set)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	course, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[models.Course])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning updated course")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteCourse deletes a course by ID. Enrollments go with it (ON DELETE CASCADE).
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

func returningColumns() string {
	return strings.Join(courseColumns, ", ")
}
