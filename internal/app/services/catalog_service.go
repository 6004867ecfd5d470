package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/events"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// CatalogService defines the interface for course and section management
type CatalogService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, courseNo string) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	AddPrerequisite(ctx context.Context, courseNo, prerequisiteNo string) (*dto.CourseResponse, error)
	RemovePrerequisite(ctx context.Context, courseNo, prerequisiteNo string) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseNo string) error
	ScheduleSection(ctx context.Context, courseNo string, req *dto.SectionRequest) (*dto.SectionResponse, error)
	GetSection(ctx context.Context, sectionNo string) (*dto.SectionResponse, error)
	ListSections(ctx context.Context, availableOnly bool, page, size int) (*dto.PaginatedResponse, error)
	DeleteSection(ctx context.Context, sectionNo string) error
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	repos     *repositories.Repositories
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repos *repositories.Repositories, publisher events.Publisher, logger zerolog.Logger) CatalogService {
	return &catalogServiceImpl{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateCourse registers a course together with its prerequisite links.
// Every prerequisite must already exist; nothing is registered otherwise.
func (s *catalogServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		courseNo := strings.TrimSpace(req.CourseNo)
		if r.CourseRepository.Exists(courseNo) {
			return fmt.Errorf("%w: %s", apperrors.ErrCourseAlreadyExists, courseNo)
		}

		course, err := domain.NewCourse(courseNo, strings.TrimSpace(req.Name), req.Credits)
		if err != nil {
			return err
		}
		for _, code := range req.Prerequisites {
			prereq, err := r.CourseRepository.GetByCourseNo(code)
			if err != nil {
				return err
			}
			if err := course.AddPrerequisite(prereq); err != nil {
				return err
			}
		}
		if err := r.CourseRepository.Create(course); err != nil {
			return err
		}

		resp = dto.FromCourse(course)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseNo", resp.CourseNo).Int("prerequisites", len(resp.Prerequisites)).Msg("Course created")
	return &resp, nil
}

// GetCourse retrieves a course by its catalog code
func (s *catalogServiceImpl) GetCourse(ctx context.Context, courseNo string) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repos.View(func(r *repositories.Repositories) error {
		course, err := r.CourseRepository.GetByCourseNo(courseNo)
		if err != nil {
			return err
		}
		resp = dto.FromCourse(course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCourses returns one page of the catalog in registration order
func (s *catalogServiceImpl) ListCourses(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	var courses []dto.CourseResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		for _, c := range r.CourseRepository.GetAll() {
			courses = append(courses, dto.FromCourse(c))
		}
		return nil
	})

	resp := helpers.Paginate(courses, page, size)
	return &resp, nil
}

// AddPrerequisite links prerequisiteNo as a prerequisite of courseNo
func (s *catalogServiceImpl) AddPrerequisite(ctx context.Context, courseNo, prerequisiteNo string) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		course, err := r.CourseRepository.GetByCourseNo(courseNo)
		if err != nil {
			return err
		}
		prereq, err := r.CourseRepository.GetByCourseNo(prerequisiteNo)
		if err != nil {
			return err
		}
		if err := course.AddPrerequisite(prereq); err != nil {
			return err
		}
		resp = dto.FromCourse(course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemovePrerequisite unlinks prerequisiteNo from courseNo
func (s *catalogServiceImpl) RemovePrerequisite(ctx context.Context, courseNo, prerequisiteNo string) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		course, err := r.CourseRepository.GetByCourseNo(courseNo)
		if err != nil {
			return err
		}
		prereq, err := r.CourseRepository.GetByCourseNo(prerequisiteNo)
		if err != nil {
			return err
		}
		if !course.RemovePrerequisite(prereq) {
			return fmt.Errorf("%w: %s is not a prerequisite of %s", apperrors.ErrResourceNotFound, prerequisiteNo, courseNo)
		}
		resp = dto.FromCourse(course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteCourse cancels every section of the course and removes it from the
// catalog. A course that is still a prerequisite of another course cannot
// be deleted.
func (s *catalogServiceImpl) DeleteCourse(ctx context.Context, courseNo string) error {
	var evts []events.Event
	err := s.repos.Update(func(r *repositories.Repositories) error {
		course, err := r.CourseRepository.GetByCourseNo(courseNo)
		if err != nil {
			return err
		}
		if dependents := r.CourseRepository.Dependents(course); len(dependents) > 0 {
			codes := make([]string, 0, len(dependents))
			for _, d := range dependents {
				codes = append(codes, d.CourseNo())
			}
			return fmt.Errorf("%w: required by %s", apperrors.ErrCourseHasDependents, strings.Join(codes, ", "))
		}

		for _, section := range course.Sections() {
			withdrawn := domain.CancelSection(section)
			if err := r.SectionRepository.Delete(section.SectionNo()); err != nil {
				return err
			}
			evts = append(evts, cancellationEvents(section, withdrawn)...)
		}
		for _, prereq := range course.Prerequisites() {
			course.RemovePrerequisite(prereq)
		}
		return r.CourseRepository.Delete(courseNo)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("courseNo", courseNo).Msg("Course deleted")
	publish(ctx, s.publisher, s.logger, evts...)
	return nil
}

// ScheduleSection creates a section of courseNo. Section numbers are unique
// across the whole registry.
func (s *catalogServiceImpl) ScheduleSection(ctx context.Context, courseNo string, req *dto.SectionRequest) (*dto.SectionResponse, error) {
	var resp dto.SectionResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		course, err := r.CourseRepository.GetByCourseNo(courseNo)
		if err != nil {
			return err
		}
		if r.SectionRepository.Exists(req.SectionNo) {
			return fmt.Errorf("%w: %s", apperrors.ErrSectionAlreadyExists, req.SectionNo)
		}

		section, err := course.ScheduleSection(req.SectionNo, req.DayOfWeek, req.TimeOfDay, req.Room, req.Capacity)
		if err != nil {
			return err
		}
		if err := r.SectionRepository.Create(section); err != nil {
			course.RemoveSection(section)
			return err
		}
		resp = dto.FromSection(section)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseNo", courseNo).Str("sectionNo", resp.SectionNo).Int("capacity", resp.Capacity).Msg("Section scheduled")
	return &resp, nil
}

// GetSection retrieves a section with its roster
func (s *catalogServiceImpl) GetSection(ctx context.Context, sectionNo string) (*dto.SectionResponse, error) {
	var resp dto.SectionResponse
	err := s.repos.View(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		resp = dto.FromSection(section)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSections returns one page of sections, optionally only those with a
// free seat
func (s *catalogServiceImpl) ListSections(ctx context.Context, availableOnly bool, page, size int) (*dto.PaginatedResponse, error) {
	var sections []dto.SectionResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		list := r.SectionRepository.GetAll()
		if availableOnly {
			list = r.SectionRepository.GetAvailable()
		}
		for _, sec := range list {
			sections = append(sections, dto.FromSection(sec))
		}
		return nil
	})

	resp := helpers.Paginate(sections, page, size)
	return &resp, nil
}

// DeleteSection cancels a section: students are withdrawn, the professor is
// released and the section leaves its course.
func (s *catalogServiceImpl) DeleteSection(ctx context.Context, sectionNo string) error {
	var evts []events.Event
	err := s.repos.Update(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		withdrawn := domain.CancelSection(section)
		evts = cancellationEvents(section, withdrawn)
		return r.SectionRepository.Delete(sectionNo)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("sectionNo", sectionNo).Int("withdrawn", len(evts)-1).Msg("Section cancelled")
	publish(ctx, s.publisher, s.logger, evts...)
	return nil
}
