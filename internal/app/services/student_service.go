package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/events"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, ssn string) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	UpdateStudent(ctx context.Context, ssn string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, ssn string) error
}

type studentServiceImpl struct {
	repos     *repositories.Repositories
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(repos *repositories.Repositories, publisher events.Publisher, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		student, err := domain.NewStudent(
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.SSN),
			strings.TrimSpace(req.Major),
			strings.TrimSpace(req.Degree),
		)
		if err != nil {
			return err
		}
		if err := r.StudentRepository.Create(student); err != nil {
			return err
		}
		resp = dto.FromStudent(student)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ssn", resp.SSN).Msg("Student registered")
	return &resp, nil
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, ssn string) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	err := s.repos.View(func(r *repositories.Repositories) error {
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		resp = dto.FromStudent(student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	var students []dto.StudentResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		for _, st := range r.StudentRepository.GetAll() {
			students = append(students, dto.FromStudent(st))
		}
		return nil
	})

	resp := helpers.Paginate(students, page, size)
	return &resp, nil
}

// UpdateStudent changes the major and/or degree. At least one must be given.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, ssn string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	major := strings.TrimSpace(req.Major)
	degree := strings.TrimSpace(req.Degree)
	if major == "" && degree == "" {
		return nil, apperrors.NewBadRequestError("nothing to update: provide major or degree")
	}

	var resp dto.StudentResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		if major != "" {
			if err := student.SetMajor(major); err != nil {
				return err
			}
		}
		if degree != "" {
			if err := student.SetDegree(degree); err != nil {
				return err
			}
		}
		resp = dto.FromStudent(student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteStudent withdraws the student from every section before removing
// them from the registry.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, ssn string) error {
	var evts []events.Event
	err := s.repos.Update(func(r *repositories.Repositories) error {
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		for _, section := range domain.WithdrawFromAll(student) {
			evts = append(evts, events.New(events.SectionDropped, section.SectionNo(), courseNoOf(section), ssn))
		}
		return r.StudentRepository.Delete(ssn)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("ssn", ssn).Int("droppedSections", len(evts)).Msg("Student deleted")
	publish(ctx, s.publisher, s.logger, evts...)
	return nil
}
