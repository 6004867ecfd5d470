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

// ProfessorController handles professor profiles
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// CreateProfessor registers a professor
// @Summary Register professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Professor already exists"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid professor data")
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// GetProfessor retrieves a professor by SSN
// @Summary Get professor
// @Tags professors
// @Produce json
// @Param ssn path string true "Professor SSN"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{ssn} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	professor, err := c.professorService.GetProfessor(ctx, ctx.Param("ssn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}

// ListProfessors lists registered professors
// @Summary List professors
// @Tags professors
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Professors retrieved successfully"
// @Router /professors [get]
func (c *ProfessorController) ListProfessors(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	professors, err := c.professorService.ListProfessors(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professors,
		Timestamp: time.Now(),
	})
}

// UpdateProfessor changes a professor's title or department
// @Summary Update professor
// @Tags professors
// @Accept json
// @Produce json
// @Param ssn path string true "Professor SSN"
// @Param request body dto.UpdateProfessorRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse} "Professor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Router /professors/{ssn} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	var req dto.UpdateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err, "Invalid professor data")
		return
	}

	professor, err := c.professorService.UpdateProfessor(ctx, ctx.Param("ssn"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      professor,
		Timestamp: time.Now(),
	})
}
