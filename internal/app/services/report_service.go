package services

import (
	"context"
	"math"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// ReportService defines the read-only registry reports
type ReportService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	CourseStatistics(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	SectionRosters(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
}

type reportServiceImpl struct {
	repos *repositories.Repositories
}

// NewReportService creates a new ReportService
func NewReportService(repos *repositories.Repositories) ReportService {
	return &reportServiceImpl{repos: repos}
}

func (s *reportServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		resp.Courses = r.CourseRepository.Count()
		resp.Sections = r.SectionRepository.Count()
		resp.Students = r.StudentRepository.Count()
		resp.Professors = r.ProfessorRepository.Count()

		for _, sec := range r.SectionRepository.GetAll() {
			resp.Enrollments += sec.EnrolledCount()
			resp.TotalCapacity += sec.Capacity()
			if sec.Professor() == nil {
				resp.UnstaffedSections++
			}
		}
		resp.AvailableSeats = resp.TotalCapacity - resp.Enrollments

		for _, st := range r.StudentRepository.GetAll() {
			resp.GradedCourses += st.Transcript().Len()
		}
		return nil
	})
	return &resp, nil
}

// CourseStatistics aggregates capacity and enrollment per course.
// Utilization is the enrolled share of total capacity as a percentage
// rounded to one decimal.
func (s *reportServiceImpl) CourseStatistics(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	var stats []dto.CourseStatsResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		for _, c := range r.CourseRepository.GetAll() {
			row := dto.CourseStatsResponse{
				CourseNo:          c.CourseNo(),
				Name:              c.CourseName(),
				Credits:           c.Credits(),
				PrerequisiteCount: len(c.Prerequisites()),
			}
			for _, sec := range c.Sections() {
				row.SectionCount++
				row.TotalCapacity += sec.Capacity()
				row.TotalEnrolled += sec.EnrolledCount()
			}
			if row.TotalCapacity > 0 {
				pct := float64(row.TotalEnrolled) / float64(row.TotalCapacity) * 100
				row.Utilization = math.Round(pct*10) / 10
			}
			stats = append(stats, row)
		}
		return nil
	})

	resp := helpers.Paginate(stats, page, size)
	return &resp, nil
}

// SectionRosters lists every section with its instructor and students
func (s *reportServiceImpl) SectionRosters(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	var rosters []dto.SectionResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		for _, sec := range r.SectionRepository.GetAll() {
			rosters = append(rosters, dto.FromSection(sec))
		}
		return nil
	})

	resp := helpers.Paginate(rosters, page, size)
	return &resp, nil
}
