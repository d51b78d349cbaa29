package models

import "time"

// Course is a row of the courses table.
type Course struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	CourseDesc     string    `json:"course_desc" db:"course_desc"`
	CourseDetail   string    `json:"course_detail" db:"course_detail"`
	CourseCoverURL string    `json:"course_cover_url" db:"course_cover_url"`
	GuideURL       string    `json:"guide_url" db:"guide_url"`
	CourseMaterial string    `json:"course_material" db:"course_material"`
	InstructorID   int64     `json:"instructor_id" db:"instructor_id"`
	MaxStudent     int       `json:"max_student" db:"max_student"`
	CurrStudent    int       `json:"curr_student" db:"curr_student"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Relations (populated when needed)
	Students []*Student `json:"-" db:"-"`
}

// CourseFields is the writable part of a course. Which fields a handler
// group actually writes is decided by its WriteSet.
type CourseFields struct {
	Name           string
	Category       string
	CourseDesc     string
	CourseDetail   string
	CourseCoverURL string
	GuideURL       string
	CourseMaterial string
	InstructorID   int64
	MaxStudent     int
	CurrStudent    int
}

// WriteSet selects the columns a create or update touches.
type WriteSet int

const (
	// WriteBase covers name, category, course_desc and instructor_id.
	WriteBase WriteSet = iota
	// WriteCatalog adds the cover, guide, material, detail and capacity columns.
	WriteCatalog
)
