package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/db"
	"github.com/coursehub/backend/internal/pkg/auth"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	demoInstructorID = 1
	// demoPassword is the login of every demo student
	demoPassword = "changeme123"
)

// DemoCourses is the catalog written into an empty database
var DemoCourses = []models.CourseFields{
	{Name: "Intro to Python", Category: "Programming", CourseDesc: "Variables, loops and functions", CourseDetail: "Twelve weekly sessions", MaxStudent: 40},
	{Name: "Advanced Python", Category: "Programming", CourseDesc: "Generators, typing and packaging", MaxStudent: 30},
	{Name: "Intro to Go", Category: "Programming", CourseDesc: "Goroutines, channels and interfaces", MaxStudent: 30},
	{Name: "SQL Fundamentals", Category: "Data", CourseDesc: "Queries, joins and indexes", MaxStudent: 35},
	{Name: "Data Visualization", Category: "Data", CourseDesc: "Charts that tell the truth", MaxStudent: 25},
	{Name: "Color Theory", Category: "Design", CourseDesc: "Palettes, contrast and harmony", MaxStudent: 20},
	{Name: "Typography Basics", Category: "Design", CourseDesc: "Type families, scale and rhythm", MaxStudent: 20},
	{Name: "Public Speaking", Category: "Communication", CourseDesc: "Structure and delivery of talks", MaxStudent: 50},
}

type demoStudent struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	// courses lists indexes into DemoCourses
	courses []int
}

var demoStudents = []demoStudent{
	{Username: "jdoe", Email: "jdoe@example.com", FirstName: "John", LastName: "Doe", courses: []int{0, 3}},
	{Username: "asmith", Email: "asmith@example.com", FirstName: "Alice", LastName: "Smith", courses: []int{0, 1, 5}},
	{Username: "mlee", Email: "mlee@example.com", FirstName: "Min", LastName: "Lee", courses: []int{2, 4, 7}},
}

var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// CreateDefaultData writes the demo catalog, students and enrollments when the
// courses table is empty. Existing students are reused.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var hasCourses bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses)`).Scan(&hasCourses); err != nil {
			return fmt.Errorf("failed to check existing courses: %w", err)
		}
		if hasCourses {
			lgr.Info().Msg("Courses already present, skipping demo data")
			return nil
		}

		courseIDs := make([]int64, 0, len(DemoCourses))
		for _, c := range DemoCourses {
			id, err := insertCourse(ctx, tx, c)
			if err != nil {
				return err
			}
			courseIDs = append(courseIDs, id)
		}

		hash, err := auth.HashPassword(demoPassword, auth.BcryptCost)
		if err != nil {
			return err
		}

		for _, s := range demoStudents {
			studentID, err := upsertStudent(ctx, tx, s, hash, lgr)
			if err != nil {
				return err
			}
			for _, idx := range s.courses {
				if _, err := tx.Exec(ctx,
					`INSERT INTO course_enrollments (course_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
					courseIDs[idx], studentID); err != nil {
					return fmt.Errorf("failed to enroll %s: %w", s.Username, err)
				}
			}
		}

		lgr.Info().Int("courses", len(courseIDs)).Int("students", len(demoStudents)).Msg("Demo data created")
		return nil
	})
}

func insertCourse(ctx context.Context, tx pgx.Tx, c models.CourseFields) (int64, error) {
	query, args, err := sb.Insert("courses").
		SetMap(map[string]interface{}{
			"name":          c.Name,
			"category":      c.Category,
			"course_desc":   c.CourseDesc,
			"course_detail": c.CourseDetail,
			"instructor_id": demoInstructorID,
			"max_student":   c.MaxStudent,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build demo course insert: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert demo course %q: %w", c.Name, err)
	}
	return id, nil
}

// upsertStudent inserts a student inside a savepoint so a duplicate username
// leaves the outer transaction usable.
func upsertStudent(ctx context.Context, tx pgx.Tx, s demoStudent, passwordHash string, lgr zerolog.Logger) (int64, error) {
	savepoint, err := tx.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open savepoint: %w", err)
	}

	var id int64
	err = savepoint.QueryRow(ctx,
		`INSERT INTO students (username, email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Username, s.Email, passwordHash, s.FirstName, s.LastName,
	).Scan(&id)

	if err == nil {
		if err := savepoint.Commit(ctx); err != nil {
			return 0, fmt.Errorf("failed to release savepoint: %w", err)
		}
		return id, nil
	}

	_ = savepoint.Rollback(ctx)
	if !dberrors.IsDuplicateConstraintError(err, "students_username_key") {
		return 0, fmt.Errorf("failed to insert demo student %s: %w", s.Username, err)
	}

	lgr.Debug().Str("username", s.Username).Msg("Demo student exists, reusing")
	if err := tx.QueryRow(ctx, `SELECT id FROM students WHERE username = $1`, s.Username).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("demo student %s vanished: %w", s.Username, err)
		}
		return 0, fmt.Errorf("failed to look up demo student %s: %w", s.Username, err)
	}
	return id, nil
}
