package controllers

import (
	"fmt"
	"net/http"

	"github.com/coursehub/backend/internal/app/models/dto"
	"github.com/coursehub/backend/internal/app/services"
	"github.com/coursehub/backend/internal/middleware"
	"github.com/coursehub/backend/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// CourseAdminController handles course management operations
type CourseAdminController struct {
	courseService services.CourseAdminService
}

// NewCourseAdminController creates a new CourseAdminController
func NewCourseAdminController(courseService services.CourseAdminService) *CourseAdminController {
	return &CourseAdminController{
		courseService: courseService,
	}
}

// GetOneCourse godoc
// @Summary Get course by ID
// @Description Retrieves a course with its enrolled students
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseDto
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseAdminController) GetOneCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromCourse(course))
}

// GetManyCourse godoc
// @Summary List courses
// @Description Retrieves every course, unpaginated
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CoursesDto
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseAdminController) GetManyCourse(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromCourses(courses))
}

// CreateCourse godoc
// @Summary Create course
// @Description Creates a course from the base fields
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "something went wrong"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseAdminController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary Update course
// @Description Overwrites the base fields of a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param course body dto.CourseRequest true "Course data"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "something went wrong"
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseAdminController) UpdateCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete course
// @Description Deletes a course and its enrollments
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseAdminController) DeleteCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
