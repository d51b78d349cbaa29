// Package testutil holds in-memory doubles shared by the service and controller tests.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coursehub/backend/internal/app/models"
	"github.com/coursehub/backend/internal/app/repositories"
)

// CourseStore is an in-memory course store. Courses are kept in id order,
// matching the ordering of the PostgreSQL repository.
type CourseStore struct {
	mu       sync.Mutex
	courses  []*models.Course
	students map[int64][]*models.Student
	nextID   int64

	// Err, when set, is returned by every call
	Err error
	// Calls counts store calls by method name
	Calls map[string]int
	// LastFilter is the filter of the most recent ListCoursesPage call
	LastFilter repositories.CourseFilter
	// LastWriteSet is the write set of the most recent create or update
	LastWriteSet models.WriteSet
}

// NewCourseStore creates a store holding courses, ids assigned from 1
func NewCourseStore(courses ...models.CourseFields) *CourseStore {
	s := &CourseStore{
		students: make(map[int64][]*models.Student),
		nextID:   1,
		Calls:    make(map[string]int),
	}
	for _, c := range courses {
		s.insert(c, models.WriteCatalog)
	}
	return s
}

// Enroll attaches a student to a course
func (s *CourseStore) Enroll(courseID int64, student *models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[courseID] = append(s.students[courseID], student)
}

// TotalCalls returns the number of store calls made so far
func (s *CourseStore) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.Calls {
		total += n
	}
	return total
}

// Len returns the number of stored courses
func (s *CourseStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.courses)
}

func (s *CourseStore) record(method string) error {
	s.Calls[method]++
	return s.Err
}

func (s *CourseStore) insert(fields models.CourseFields, set models.WriteSet) *models.Course {
	now := time.Now().UTC()
	c := &models.Course{ID: s.nextID, CreatedAt: now, UpdatedAt: now}
	apply(c, fields, set)
	s.nextID++
	s.courses = append(s.courses, c)
	return c
}

func apply(c *models.Course, f models.CourseFields, set models.WriteSet) {
	c.Name = f.Name
	c.Category = f.Category
	c.CourseDesc = f.CourseDesc
	c.InstructorID = f.InstructorID
	if set == models.WriteCatalog {
		c.CourseDetail = f.CourseDetail
		c.CourseCoverURL = f.CourseCoverURL
		c.GuideURL = f.GuideURL
		c.CourseMaterial = f.CourseMaterial
		c.MaxStudent = f.MaxStudent
		c.CurrStudent = f.CurrStudent
	}
}

func (s *CourseStore) find(id int64) (int, *models.Course) {
	for i, c := range s.courses {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

func clone(c *models.Course) *models.Course {
	out := *c
	out.Students = nil
	return &out
}

// GetCourseByID implements services.CourseStore
func (s *CourseStore) GetCourseByID(_ context.Context, id int64, withStudents bool) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("GetCourseByID"); err != nil {
		return nil, err
	}

	_, c := s.find(id)
	if c == nil {
		return nil, repositories.ErrCourseNotFound
	}
	out := clone(c)
	if withStudents {
		out.Students = append([]*models.Student{}, s.students[id]...)
	}
	return out, nil
}

// ListCourses implements services.CourseStore
func (s *CourseStore) ListCourses(_ context.Context) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("ListCourses"); err != nil {
		return nil, err
	}

	out := make([]*models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, clone(c))
	}
	return out, nil
}

// ListCoursesPage implements services.CourseStore. Text queries match when
// every "&"-joined term occurs in the course name, ignoring case.
func (s *CourseStore) ListCoursesPage(_ context.Context, filter repositories.CourseFilter, offset, limit uint64) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastFilter = filter
	if err := s.record("ListCoursesPage"); err != nil {
		return nil, err
	}

	var matched []*models.Course
	for _, c := range s.courses {
		if filter.Category != nil && c.Category != *filter.Category {
			continue
		}
		if filter.TextQuery != "" && !matchesText(c.Name, filter.TextQuery) {
			continue
		}
		matched = append(matched, c)
	}

	out := make([]*models.Course, 0)
	for i := offset; i < uint64(len(matched)) && i-offset < limit; i++ {
		out = append(out, clone(matched[i]))
	}
	return out, nil
}

func matchesText(name, query string) bool {
	words := strings.Fields(strings.ToLower(name))
	for _, term := range strings.Split(query, " & ") {
		term = strings.ToLower(strings.TrimSpace(term))
		found := false
		for _, w := range words {
			if w == term {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ListCategories implements services.CourseStore
func (s *CourseStore) ListCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("ListCategories"); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range s.courses {
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	sort.Strings(out)
	return out, nil
}

// CreateCourse implements services.CourseStore
func (s *CourseStore) CreateCourse(_ context.Context, fields models.CourseFields, set models.WriteSet) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastWriteSet = set
	if err := s.record("CreateCourse"); err != nil {
		return nil, err
	}
	return clone(s.insert(fields, set)), nil
}

// UpdateCourse implements services.CourseStore
func (s *CourseStore) UpdateCourse(_ context.Context, id int64, fields models.CourseFields, set models.WriteSet) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastWriteSet = set
	if err := s.record("UpdateCourse"); err != nil {
		return nil, err
	}

	_, c := s.find(id)
	if c == nil {
		return nil, repositories.ErrCourseNotFound
	}
	apply(c, fields, set)
	c.UpdatedAt = time.Now().UTC()
	return clone(c), nil
}

// DeleteCourse implements services.CourseStore
func (s *CourseStore) DeleteCourse(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("DeleteCourse"); err != nil {
		return err
	}

	i, c := s.find(id)
	if c == nil {
		return repositories.ErrCourseNotFound
	}
	s.courses = append(s.courses[:i], s.courses[i+1:]...)
	delete(s.students, id)
	return nil
}
