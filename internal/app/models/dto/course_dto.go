package dto

import "github.com/coursehub/backend/internal/app/models"

// CourseRequest is the admin create/update payload.
type CourseRequest struct {
	Name         string `json:"name" validate:"required,max=200" example:"Intro to Python"`
	Category     string `json:"category" validate:"required,max=100" example:"Programming"`
	CourseDesc   string `json:"course_desc" validate:"required" example:"Variables, loops and functions"`
	InstructorID int64  `json:"instructor_id" validate:"required,gt=0" example:"3"`
}

// Fields converts the request into the writable course fields
func (r CourseRequest) Fields() models.CourseFields {
	return models.CourseFields{
		Name:         r.Name,
		Category:     r.Category,
		CourseDesc:   r.CourseDesc,
		InstructorID: r.InstructorID,
	}
}

// CatalogCourseRequest is the catalog create/update payload.
type CatalogCourseRequest struct {
	CourseRequest
	CourseDetail   string `json:"course_detail" validate:"omitempty,max=10000" example:"Twelve weekly sessions"`
	CourseCoverURL string `json:"course_cover_url" validate:"omitempty,url" example:"https://cdn.example.com/covers/python.png"`
	GuideURL       string `json:"guide_url" validate:"omitempty,url" example:"https://cdn.example.com/guides/python.pdf"`
	CourseMaterial string `json:"course_material" validate:"omitempty,max=10000" example:"Slides, notebooks"`
	MaxStudent     int    `json:"max_student" validate:"gte=0" example:"40"`
	CurrStudent    int    `json:"curr_student" validate:"gte=0" example:"0"`
}

// Fields converts the request into the writable course fields
func (r CatalogCourseRequest) Fields() models.CourseFields {
	f := r.CourseRequest.Fields()
	f.CourseDetail = r.CourseDetail
	f.CourseCoverURL = r.CourseCoverURL
	f.GuideURL = r.GuideURL
	f.CourseMaterial = r.CourseMaterial
	f.MaxStudent = r.MaxStudent
	f.CurrStudent = r.CurrStudent
	return f
}

// StudentDto is an enrolled student as exposed by the admin API.
// Credential material is deliberately absent.
type StudentDto struct {
	ID          int64  `json:"id" example:"7"`
	Username    string `json:"username" example:"jdoe"`
	Email       string `json:"email" example:"jdoe@example.com"`
	FirstName   string `json:"first_name" example:"John"`
	LastName    string `json:"last_name" example:"Doe"`
	PhoneNumber string `json:"phone_number" example:"+15550100"`
}

// CourseDto is a course with its enrolled students
type CourseDto struct {
	ID         int64        `json:"id" example:"1"`
	Name       string       `json:"name" example:"Intro to Python"`
	Category   string       `json:"category" example:"Programming"`
	CourseDesc string       `json:"course_desc" example:"Variables, loops and functions"`
	Students   []StudentDto `json:"students"`
}

// CourseSummaryDto is the admin list projection
type CourseSummaryDto struct {
	ID         int64  `json:"id" example:"1"`
	Name       string `json:"name" example:"Intro to Python"`
	Category   string `json:"category" example:"Programming"`
	CourseDesc string `json:"course_desc" example:"Variables, loops and functions"`
}

// CoursesDto is the admin list response
type CoursesDto struct {
	Total   int                `json:"total" example:"1"`
	Courses []CourseSummaryDto `json:"courses"`
}

// PartCourseHomeDto is the public projection of a course
type PartCourseHomeDto struct {
	ID             int64  `json:"id" example:"1"`
	Name           string `json:"name" example:"Intro to Python"`
	CourseDesc     string `json:"course_desc" example:"Variables, loops and functions"`
	CourseCoverURL string `json:"course_cover_url" example:"https://cdn.example.com/covers/python.png"`
}

// CatalogCoursesDto is the search and category listing response
type CatalogCoursesDto struct {
	Total   int                 `json:"total" example:"1"`
	Courses []PartCourseHomeDto `json:"courses"`
}

// CourseHomeDto is the home page response
type CourseHomeDto struct {
	AllCategory []string            `json:"all_category" example:"Design,Programming"`
	Courses     []PartCourseHomeDto `json:"courses"`
}

// FromCourse converts a course with loaded students to a CourseDto
func FromCourse(course *models.Course) CourseDto {
	students := make([]StudentDto, 0, len(course.Students))
	for _, s := range course.Students {
		students = append(students, StudentDto{
			ID:          s.ID,
			Username:    s.Username,
			Email:       s.Email,
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			PhoneNumber: s.PhoneNumber,
		})
	}
	return CourseDto{
		ID:         course.ID,
		Name:       course.Name,
		Category:   course.Category,
		CourseDesc: course.CourseDesc,
		Students:   students,
	}
}

// FromCourses builds the admin list response
func FromCourses(courses []*models.Course) CoursesDto {
	items := make([]CourseSummaryDto, 0, len(courses))
	for _, c := range courses {
		items = append(items, CourseSummaryDto{
			ID:         c.ID,
			Name:       c.Name,
			Category:   c.Category,
			CourseDesc: c.CourseDesc,
		})
	}
	return CoursesDto{Total: len(items), Courses: items}
}

// FromCoursePart converts a course to its public projection
func FromCoursePart(course *models.Course) PartCourseHomeDto {
	return PartCourseHomeDto{
		ID:             course.ID,
		Name:           course.Name,
		CourseDesc:     course.CourseDesc,
		CourseCoverURL: course.CourseCoverURL,
	}
}

// FromCatalogCourses builds the search/category listing response
func FromCatalogCourses(courses []*models.Course) CatalogCoursesDto {
	items := fromCourseParts(courses)
	return CatalogCoursesDto{Total: len(items), Courses: items}
}

// NewCourseHomeDto builds the home page response
func NewCourseHomeDto(categories []string, courses []*models.Course) CourseHomeDto {
	if categories == nil {
		categories = []string{}
	}
	return CourseHomeDto{AllCategory: categories, Courses: fromCourseParts(courses)}
}

func fromCourseParts(courses []*models.Course) []PartCourseHomeDto {
	items := make([]PartCourseHomeDto, 0, len(courses))
	for _, c := range courses {
		items = append(items, FromCoursePart(c))
	}
	return items
}
