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

// CourseCatalogController serves the public course catalog
type CourseCatalogController struct {
	catalogService services.CourseCatalogService
}

// NewCourseCatalogController creates a new CourseCatalogController
func NewCourseCatalogController(catalogService services.CourseCatalogService) *CourseCatalogController {
	return &CourseCatalogController{
		catalogService: catalogService,
	}
}

// GetHomeCourse godoc
// @Summary Catalog home page
// @Description Returns one page of courses and the categories they belong to
// @Tags catalog
// @Produce json
// @Param pages path int true "Page number (1-based)"
// @Success 200 {object} dto.CourseHomeDto
// @Failure 404 {object} dto.ErrorResponse "invalid Pages"
// @Failure 500 {object} dto.ErrorResponse
// @Router /home/{pages} [get]
func (c *CourseCatalogController) GetHomeCourse(ctx *gin.Context) {
	page, err := parsePagesParam(ctx, "pages")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	home, err := c.catalogService.GetHomePage(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseHomeDto(home.Categories, home.Courses))
}

// GetOneCourse godoc
// @Summary Get catalog course
// @Description Returns the public projection of a course
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.PartCourseHomeDto
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /home/course/{id} [get]
func (c *CourseCatalogController) GetOneCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.catalogService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromCoursePart(course))
}

// SearchCourse godoc
// @Summary Search courses
// @Description Full-text search on course names. Terms separated by '+' must all match.
// @Tags catalog
// @Produce json
// @Param pages path int true "Page number (1-based)"
// @Param search query string true "Search terms, e.g. intro+python"
// @Success 200 {object} dto.CatalogCoursesDto
// @Failure 404 {object} dto.ErrorResponse "invalid Pages or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /search/{pages} [get]
func (c *CourseCatalogController) SearchCourse(ctx *gin.Context) {
	page, err := parsePagesParam(ctx, "pages")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	search, ok := ctx.GetQuery("search")
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrSearchRequired)
		return
	}

	courses, err := c.catalogService.SearchCourses(ctx.Request.Context(), search, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromCatalogCourses(courses))
}

// GetCategoryCourse godoc
// @Summary Courses by category
// @Description Returns one page of the courses in a category (exact, case-sensitive)
// @Tags catalog
// @Produce json
// @Param cat path string true "Category"
// @Param pages path int true "Page number (1-based)"
// @Success 200 {object} dto.CatalogCoursesDto
// @Failure 404 {object} dto.ErrorResponse "invalid Pages"
// @Failure 500 {object} dto.ErrorResponse
// @Router /category/{cat}/{pages} [get]
func (c *CourseCatalogController) GetCategoryCourse(ctx *gin.Context) {
	page, err := parsePagesParam(ctx, "pages")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.catalogService.ListCategoryCourses(ctx.Request.Context(), ctx.Param("cat"), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromCatalogCourses(courses))
}

// CreateCourse godoc
// @Summary Create catalog course
// @Description Creates a course with the full catalog field set
// @Tags catalog
// @Accept json
// @Produce json
// @Param course body dto.CatalogCourseRequest true "Course data"
// @Success 201 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "something went wrong"
// @Failure 500 {object} dto.ErrorResponse
// @Router /home/course [post]
func (c *CourseCatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CatalogCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	course, err := c.catalogService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary Update catalog course
// @Description Validates and overwrites the full catalog field set
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param course body dto.CatalogCourseRequest true "Course data"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "something went wrong"
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /home/course/{id} [put]
func (c *CourseCatalogController) UpdateCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CatalogCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return
	}

	course, err := c.catalogService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Delete catalog course
// @Tags catalog
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "invalid ID or not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /home/course/{id} [delete]
func (c *CourseCatalogController) DeleteCourse(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.catalogService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
