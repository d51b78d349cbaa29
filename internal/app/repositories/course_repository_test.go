package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
	"github.com/coursehub/backend/internal/pkg/dberrors"
	"github.com/coursehub/backend/internal/testutil"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueCategory keeps rows of concurrent runs apart and removes them afterwards
func uniqueCategory(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	category := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM courses WHERE category = $1`, category)
	})
	return category
}

func TestCourseRepository_CRUD(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := repositories.NewCourseRepository(pool)
	ctx := context.Background()
	category := uniqueCategory(t, pool)

	created, err := repo.CreateCourse(ctx, models.CourseFields{
		Name:           "Intro to Python",
		Category:       category,
		CourseDesc:     "Variables",
		CourseCoverURL: "https://cdn.example.com/python.png",
		InstructorID:   1,
		MaxStudent:     30,
	}, models.WriteBase)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.CourseCoverURL != "" || created.MaxStudent != 0 {
		t.Fatalf("base write set must only write base fields: %+v", created)
	}

	updated, err := repo.UpdateCourse(ctx, created.ID, models.CourseFields{
		Name:           "Intro to Python 3",
		Category:       category,
		CourseDesc:     "Variables",
		CourseCoverURL: "https://cdn.example.com/python3.png",
		InstructorID:   1,
		MaxStudent:     30,
	}, models.WriteCatalog)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Intro to Python 3" || updated.MaxStudent != 30 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	got, err := repo.GetCourseByID(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CourseCoverURL != "https://cdn.example.com/python3.png" || len(got.Students) != 0 {
		t.Fatalf("unexpected course: %+v", got)
	}

	if err := repo.DeleteCourse(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetCourseByID(ctx, created.ID, false); !errors.Is(err, repositories.ErrCourseNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.DeleteCourse(ctx, created.ID); !errors.Is(err, repositories.ErrCourseNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := repo.UpdateCourse(ctx, created.ID, models.CourseFields{Name: "x"}, models.WriteBase); !errors.Is(err, repositories.ErrCourseNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestCourseRepository_PageFilters(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := repositories.NewCourseRepository(pool)
	ctx := context.Background()
	category := uniqueCategory(t, pool)

	for _, name := range []string{"Intro to Python", "Advanced Python", "Intro to Go"} {
		if _, err := repo.CreateCourse(ctx, models.CourseFields{
			Name: name, Category: category, CourseDesc: "d", InstructorID: 1,
		}, models.WriteBase); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	byCategory, err := repo.ListCoursesPage(ctx, repositories.CourseFilter{Category: &category}, 0, 2)
	if err != nil {
		t.Fatalf("category page: %v", err)
	}
	if len(byCategory) != 2 || byCategory[0].Name != "Intro to Python" {
		t.Fatalf("expected the first two courses in id order, got %d", len(byCategory))
	}

	searched, err := repo.ListCoursesPage(ctx, repositories.CourseFilter{
		Category:     &category,
		TextQuery:    "intro & python",
		SearchConfig: "english",
	}, 0, 12)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(searched) != 1 || searched[0].Name != "Intro to Python" {
		t.Fatalf("expected only Intro to Python, got %d", len(searched))
	}

	categories, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	found := false
	for _, c := range categories {
		if c == category {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s among categories", category)
	}
}

func TestCourseRepository_CheckViolationIsClientError(t *testing.T) {
	pool := testutil.Postgres(t)
	repo := repositories.NewCourseRepository(pool)
	category := uniqueCategory(t, pool)

	_, err := repo.CreateCourse(context.Background(), models.CourseFields{
		Name: "Broken", Category: category, CourseDesc: "d", InstructorID: 1, MaxStudent: -1,
	}, models.WriteCatalog)
	if !dberrors.IsClientError(err) {
		t.Fatalf("expected a client error, got %v", err)
	}
}
