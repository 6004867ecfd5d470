package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// CourseController handles the course catalog
type CourseController struct {
	catalogService services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService services.CatalogService) *CourseController {
	return &CourseController{
		catalogService: catalogService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Adds a course to the catalog. Every listed prerequisite must already exist.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Prerequisite not found"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid course data")
		return
	}

	course, err := c.catalogService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCourse retrieves a course by its number
// @Summary Get course
// @Tags courses
// @Produce json
// @Param courseNo path string true "Course number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseNo} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.GetCourse(ctx, ctx.Param("courseNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// ListCourses lists the catalog
// @Summary List courses
// @Description Retrieves a page of courses in catalog order
// @Tags courses
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courses, err := c.catalogService.ListCourses(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// AddPrerequisite links an existing course as a prerequisite
// @Summary Add prerequisite
// @Description Links an existing course as a prerequisite. Links that would create a cycle are rejected.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseNo path string true "Course number"
// @Param request body dto.AddPrerequisiteRequest true "Prerequisite course"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Prerequisite added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or cyclic prerequisite"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseNo}/prerequisites [post]
func (c *CourseController) AddPrerequisite(ctx *gin.Context) {
	var req dto.AddPrerequisiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid prerequisite data")
		return
	}

	course, err := c.catalogService.AddPrerequisite(ctx, ctx.Param("courseNo"), req.CourseNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// RemovePrerequisite unlinks a prerequisite
// @Summary Remove prerequisite
// @Tags courses
// @Produce json
// @Param courseNo path string true "Course number"
// @Param prerequisiteNo path string true "Prerequisite course number"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Prerequisite removed"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseNo}/prerequisites/{prerequisiteNo} [delete]
func (c *CourseController) RemovePrerequisite(ctx *gin.Context) {
	course, err := c.catalogService.RemovePrerequisite(ctx, ctx.Param("courseNo"), ctx.Param("prerequisiteNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course and cancels its sections
// @Summary Delete course
// @Description Removes a course, cancelling all of its sections. Courses that other courses require cannot be deleted.
// @Tags courses
// @Produce json
// @Param courseNo path string true "Course number"
// @Success 204 "Course deleted"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course is a prerequisite for other courses"
// @Router /courses/{courseNo} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.catalogService.DeleteCourse(ctx, ctx.Param("courseNo")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ScheduleSection schedules a new section under a course
// @Summary Schedule section
// @Tags courses
// @Accept json
// @Produce json
// @Param courseNo path string true "Course number"
// @Param request body dto.SectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=dto.SectionResponse} "Section scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Section already exists"
// @Router /courses/{courseNo}/sections [post]
func (c *CourseController) ScheduleSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid section data")
		return
	}

	section, err := c.catalogService.ScheduleSection(ctx, ctx.Param("courseNo"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}
