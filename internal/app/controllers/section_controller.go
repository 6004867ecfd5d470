package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// SectionController handles sections, their instructor and their roster
type SectionController struct {
	catalogService    services.CatalogService
	professorService  services.ProfessorService
	enrollmentService services.EnrollmentService
}

// NewSectionController creates a new SectionController
func NewSectionController(
	catalogService services.CatalogService,
	professorService services.ProfessorService,
	enrollmentService services.EnrollmentService,
) *SectionController {
	return &SectionController{
		catalogService:    catalogService,
		professorService:  professorService,
		enrollmentService: enrollmentService,
	}
}

// ListSections lists scheduled sections
// @Summary List sections
// @Tags sections
// @Produce json
// @Param available query bool false "Only sections with free seats"
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Sections retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid available flag"
// @Router /sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
	availableOnly := false
	if raw := ctx.Query("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid available flag")
			errorDetail = errorDetail.WithField("available").WithDetails("available must be true or false")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		availableOnly = parsed
	}
	page, size := helpers.ParsePaginationParams(ctx)

	sections, err := c.catalogService.ListSections(ctx, availableOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}

// GetSection retrieves a section by its number
// @Summary Get section
// @Tags sections
// @Produce json
// @Param sectionNo path string true "Section number"
// @Success 200 {object} dto.APIResponse{data=dto.SectionResponse} "Section retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{sectionNo} [get]
func (c *SectionController) GetSection(ctx *gin.Context) {
	section, err := c.catalogService.GetSection(ctx, ctx.Param("sectionNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// DeleteSection cancels a section
// @Summary Cancel section
// @Description Cancels a section, withdrawing every enrolled student and releasing the instructor
// @Tags sections
// @Param sectionNo path string true "Section number"
// @Success 204 "Section cancelled"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /sections/{sectionNo} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	if err := c.catalogService.DeleteSection(ctx, ctx.Param("sectionNo")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignProfessor sets the section's instructor
// @Summary Assign professor
// @Tags sections
// @Accept json
// @Produce json
// @Param sectionNo path string true "Section number"
// @Param request body dto.AssignProfessorRequest true "Professor SSN"
// @Success 200 {object} dto.APIResponse{data=dto.SectionResponse} "Professor assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section or professor not found"
// @Router /sections/{sectionNo}/professor [put]
func (c *SectionController) AssignProfessor(ctx *gin.Context) {
	var req dto.AssignProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid professor assignment")
		return
	}

	section, err := c.professorService.AssignSection(ctx, ctx.Param("sectionNo"), req.SSN)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// Enroll enrolls a student in a section
// @Summary Enroll student
// @Description Runs the seat and prerequisite checks. Rejections are reported with success=false.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param sectionNo path string true "Section number"
// @Param request body dto.EnrollRequest true "Student SSN"
// @Success 201 {object} dto.StructuredResponse{data=dto.EnrollmentResponse} "Enrollment successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Section or student not found"
// @Failure 422 {object} dto.StructuredResponse "Enrollment rejected"
// @Router /sections/{sectionNo}/enrollments [post]
func (c *SectionController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid enrollment data")
		return
	}

	outcome, err := c.enrollmentService.Enroll(ctx, ctx.Param("sectionNo"), req.SSN)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !outcome.Success {
		resp := dto.NewStructuredFailure(outcome.Message)
		resp.Data = outcome.Section
		ctx.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(outcome.Section, outcome.Message))
}

// Drop withdraws a student from a section
// @Summary Drop enrollment
// @Tags enrollments
// @Param sectionNo path string true "Section number"
// @Param ssn path string true "Student SSN"
// @Success 204 "Student withdrawn"
// @Failure 400 {object} dto.ErrorResponse "Student not in the section"
// @Failure 404 {object} dto.ErrorResponse "Section or student not found"
// @Router /sections/{sectionNo}/enrollments/{ssn} [delete]
func (c *SectionController) Drop(ctx *gin.Context) {
	if err := c.enrollmentService.Drop(ctx, ctx.Param("sectionNo"), ctx.Param("ssn")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// PostGrade records a grade for an enrolled student
// @Summary Post grade
// @Description Records a 0-10 grade on the student's transcript. Posting again replaces the grade.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param sectionNo path string true "Section number"
// @Param ssn path string true "Student SSN"
// @Param request body dto.PostGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptEntryResponse} "Grade posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade or student not in the section"
// @Failure 404 {object} dto.ErrorResponse "Section or student not found"
// @Router /sections/{sectionNo}/grades/{ssn} [put]
func (c *SectionController) PostGrade(ctx *gin.Context) {
	var req dto.PostGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid grade")
		return
	}

	entry, err := c.enrollmentService.PostGrade(ctx, ctx.Param("sectionNo"), ctx.Param("ssn"), *req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}
