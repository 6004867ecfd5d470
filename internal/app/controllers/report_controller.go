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

// ReportController serves read-only registry reports and the health probe
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// Health reports liveness together with the registry's entity counts
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is up"
// @Router /health [get]
func (c *ReportController) Health(ctx *gin.Context) {
	dashboard, err := c.reportService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:     "ok",
		Courses:    dashboard.Courses,
		Sections:   dashboard.Sections,
		Students:   dashboard.Students,
		Professors: dashboard.Professors,
	})
}

// Dashboard summarizes the registry
// @Summary Registry dashboard
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.reportService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}

// CourseStatistics lists per-course capacity and utilization
// @Summary Course statistics
// @Tags reports
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Statistics retrieved successfully"
// @Router /reports/courses [get]
func (c *ReportController) CourseStatistics(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	stats, err := c.reportService.CourseStatistics(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// SectionRosters lists sections with their enrolled students
// @Summary Section rosters
// @Tags reports
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Rosters retrieved successfully"
// @Router /reports/sections [get]
func (c *ReportController) SectionRosters(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	rosters, err := c.reportService.SectionRosters(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rosters,
		Timestamp: time.Now(),
	})
}
