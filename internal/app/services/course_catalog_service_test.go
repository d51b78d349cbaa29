package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/coursehub/backend/internal/pkg/validation"
	"github.com/coursehub/backend/internal/testutil"
)

var _ CourseStore = (*testutil.CourseStore)(nil)

// thirteenCourses puts category "A" on rows 1-12 and "B" on row 13.
func thirteenCourses() []models.CourseFields {
	out := make([]models.CourseFields, 0, 13)
	for i := 1; i <= 13; i++ {
		category := "A"
		if i == 13 {
			category = "B"
		}
		out = append(out, models.CourseFields{
			Name:         fmt.Sprintf("Course %d", i),
			Category:     category,
			CourseDesc:   "desc",
			InstructorID: 1,
		})
	}
	return out
}

func newCatalog(store CourseStore, scope string) CourseCatalogService {
	return NewCourseCatalogService(store, validation.NewStructSchema(), CatalogOptions{
		PageSize:      12,
		SearchConfig:  "english",
		CategoryScope: scope,
	})
}

func validCatalogRequest() *dto.CatalogCourseRequest {
	return &dto.CatalogCourseRequest{
		CourseRequest: dto.CourseRequest{
			Name:         "Intro to Python",
			Category:     "Programming",
			CourseDesc:   "Variables, loops and functions",
			InstructorID: 3,
		},
		CourseCoverURL: "https://cdn.example.com/python.png",
		MaxStudent:     40,
	}
}

func TestGetHomePage_PageLocalCategories(t *testing.T) {
	store := testutil.NewCourseStore(thirteenCourses()...)
	svc := newCatalog(store, config.CategoryScopePage)

	first, err := svc.GetHomePage(context.Background(), 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(first.Courses) != 12 {
		t.Fatalf("expected 12 courses on page 1, got %d", len(first.Courses))
	}
	if len(first.Categories) != 1 || first.Categories[0] != "A" {
		t.Fatalf("expected categories [A] on page 1, got %v", first.Categories)
	}

	second, err := svc.GetHomePage(context.Background(), 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(second.Courses) != 1 || second.Courses[0].ID != 13 {
		t.Fatalf("expected only course 13 on page 2, got %d courses", len(second.Courses))
	}
	if len(second.Categories) != 1 || second.Categories[0] != "B" {
		t.Fatalf("expected categories [B] on page 2, got %v", second.Categories)
	}
}

func TestGetHomePage_GlobalCategories(t *testing.T) {
	store := testutil.NewCourseStore(thirteenCourses()...)
	svc := newCatalog(store, config.CategoryScopeGlobal)

	home, err := svc.GetHomePage(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.Categories) != 2 || home.Categories[0] != "A" || home.Categories[1] != "B" {
		t.Fatalf("expected [A B], got %v", home.Categories)
	}
	if store.Calls["ListCategories"] != 1 {
		t.Fatalf("expected one category aggregate query, got %d", store.Calls["ListCategories"])
	}
}

func TestGetHomePage_PastTheEndIsEmpty(t *testing.T) {
	store := testutil.NewCourseStore(thirteenCourses()...)
	svc := newCatalog(store, config.CategoryScopePage)

	home, err := svc.GetHomePage(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.Courses) != 0 || len(home.Categories) != 0 {
		t.Fatalf("expected empty page, got %d courses %v", len(home.Courses), home.Categories)
	}
	if home.Categories == nil {
		t.Fatalf("categories must not be nil")
	}
}

func TestGetHomePage_HugePageIsEmpty(t *testing.T) {
	store := testutil.NewCourseStore(thirteenCourses()...)
	svc := newCatalog(store, config.CategoryScopePage)

	// (p-1)*12 wraps to offset 0 without the overflow guard
	home, err := svc.GetHomePage(context.Background(), 4611686018427387905)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.Courses) != 0 || len(home.Categories) != 0 {
		t.Fatalf("expected empty page, got %d courses %v", len(home.Courses), home.Categories)
	}
	if store.TotalCalls() != 0 {
		t.Fatalf("store must not be called for an offset past MaxInt64")
	}
}

func TestGetHomePage_RejectsPageBelowOne(t *testing.T) {
	store := testutil.NewCourseStore()
	svc := newCatalog(store, config.CategoryScopePage)

	if _, err := svc.GetHomePage(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidPages) {
		t.Fatalf("expected ErrInvalidPages, got %v", err)
	}
	if store.TotalCalls() != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestSearchCourses_JoinsTermsWithAnd(t *testing.T) {
	store := testutil.NewCourseStore(
		models.CourseFields{Name: "Intro to Python", Category: "Programming", CourseDesc: "d", InstructorID: 1},
		models.CourseFields{Name: "Advanced Python", Category: "Programming", CourseDesc: "d", InstructorID: 1},
		models.CourseFields{Name: "Intro to Go", Category: "Programming", CourseDesc: "d", InstructorID: 1},
	)
	svc := newCatalog(store, config.CategoryScopePage)

	courses, err := svc.SearchCourses(context.Background(), "intro+python", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.LastFilter.TextQuery != "intro & python" {
		t.Fatalf("expected text query %q, got %q", "intro & python", store.LastFilter.TextQuery)
	}
	if store.LastFilter.SearchConfig != "english" {
		t.Fatalf("expected search config english, got %q", store.LastFilter.SearchConfig)
	}
	if len(courses) != 1 || courses[0].Name != "Intro to Python" {
		t.Fatalf("expected only Intro to Python, got %d courses", len(courses))
	}
}

func TestSearchCourses_BlankSearchIsRejected(t *testing.T) {
	store := testutil.NewCourseStore()
	svc := newCatalog(store, config.CategoryScopePage)

	for _, search := range []string{"", "   ", "+++", "&|!"} {
		if _, err := svc.SearchCourses(context.Background(), search, 1); !errors.Is(err, apperrors.ErrSearchRequired) {
			t.Fatalf("search %q: expected ErrSearchRequired, got %v", search, err)
		}
	}
	if store.TotalCalls() != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestListCategoryCourses_ExactMatch(t *testing.T) {
	store := testutil.NewCourseStore(
		models.CourseFields{Name: "One", Category: "Design", CourseDesc: "d", InstructorID: 1},
		models.CourseFields{Name: "Two", Category: "design", CourseDesc: "d", InstructorID: 1},
	)
	svc := newCatalog(store, config.CategoryScopePage)

	courses, err := svc.ListCategoryCourses(context.Background(), "Design", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[0].Name != "One" {
		t.Fatalf("expected only the Design course, got %d", len(courses))
	}
}

func TestCatalogGetCourse_DoesNotLoadStudents(t *testing.T) {
	store := testutil.NewCourseStore(models.CourseFields{Name: "One", Category: "A", CourseDesc: "d", InstructorID: 1})
	store.Enroll(1, &models.Student{ID: 9, Username: "jdoe"})
	svc := newCatalog(store, config.CategoryScopePage)

	course, err := svc.GetCourse(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(course.Students) != 0 {
		t.Fatalf("expected no students, got %d", len(course.Students))
	}
}

func TestCatalogCreateCourse_WritesCatalogFields(t *testing.T) {
	store := testutil.NewCourseStore()
	svc := newCatalog(store, config.CategoryScopePage)

	course, err := svc.CreateCourse(context.Background(), validCatalogRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.LastWriteSet != models.WriteCatalog {
		t.Fatalf("expected catalog write set")
	}
	if course.CourseCoverURL != "https://cdn.example.com/python.png" || course.MaxStudent != 40 {
		t.Fatalf("catalog fields not written: %+v", course)
	}
}

func TestCatalogUpdateCourse_ValidatesPayload(t *testing.T) {
	store := testutil.NewCourseStore(models.CourseFields{Name: "One", Category: "A", CourseDesc: "d", InstructorID: 1})
	svc := newCatalog(store, config.CategoryScopePage)

	req := validCatalogRequest()
	req.Name = ""
	req.GuideURL = "not a url"

	_, err := svc.UpdateCourse(context.Background(), 1, req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if store.Calls["UpdateCourse"] != 0 {
		t.Fatalf("store update must not be called")
	}
}

func TestCatalogUpdateCourse_MissingRow(t *testing.T) {
	store := testutil.NewCourseStore()
	svc := newCatalog(store, config.CategoryScopePage)

	_, err := svc.UpdateCourse(context.Background(), 42, validCatalogRequest())
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNewCourseCatalogService_DefaultsZeroOptions(t *testing.T) {
	store := testutil.NewCourseStore(thirteenCourses()...)
	svc := NewCourseCatalogService(store, validation.NewStructSchema(), CatalogOptions{})

	home, err := svc.GetHomePage(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(home.Courses) != 12 {
		t.Fatalf("expected default page size 12, got %d", len(home.Courses))
	}
}
