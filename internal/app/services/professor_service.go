package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// ProfessorService defines the interface for professor operations
type ProfessorService interface {
	CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)
	GetProfessor(ctx context.Context, ssn string) (*dto.ProfessorResponse, error)
	ListProfessors(ctx context.Context, page, size int) (*dto.PaginatedResponse, error)
	UpdateProfessor(ctx context.Context, ssn string, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error)
	AssignSection(ctx context.Context, sectionNo, ssn string) (*dto.SectionResponse, error)
}

type professorServiceImpl struct {
	repos  *repositories.Repositories
	logger zerolog.Logger
}

// NewProfessorService creates a new ProfessorService
func NewProfessorService(repos *repositories.Repositories, logger zerolog.Logger) ProfessorService {
	return &professorServiceImpl{
		repos:  repos,
		logger: logger,
	}
}

func (s *professorServiceImpl) CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	var resp dto.ProfessorResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		professor, err := domain.NewProfessor(
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.SSN),
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Department),
		)
		if err != nil {
			return err
		}
		if err := r.ProfessorRepository.Create(professor); err != nil {
			return err
		}
		resp = dto.FromProfessor(professor)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ssn", resp.SSN).Msg("Professor registered")
	return &resp, nil
}

func (s *professorServiceImpl) GetProfessor(ctx context.Context, ssn string) (*dto.ProfessorResponse, error) {
	var resp dto.ProfessorResponse
	err := s.repos.View(func(r *repositories.Repositories) error {
		professor, err := r.ProfessorRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		resp = dto.FromProfessor(professor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *professorServiceImpl) ListProfessors(ctx context.Context, page, size int) (*dto.PaginatedResponse, error) {
	var professors []dto.ProfessorResponse
	_ = s.repos.View(func(r *repositories.Repositories) error {
		for _, p := range r.ProfessorRepository.GetAll() {
			professors = append(professors, dto.FromProfessor(p))
		}
		return nil
	})

	resp := helpers.Paginate(professors, page, size)
	return &resp, nil
}

func (s *professorServiceImpl) UpdateProfessor(ctx context.Context, ssn string, req *dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	title := strings.TrimSpace(req.Title)
	department := strings.TrimSpace(req.Department)
	if title == "" && department == "" {
		return nil, apperrors.NewBadRequestError("nothing to update: provide title or department")
	}

	var resp dto.ProfessorResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		professor, err := r.ProfessorRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		if title != "" {
			if err := professor.SetTitle(title); err != nil {
				return err
			}
		}
		if department != "" {
			if err := professor.SetDepartment(department); err != nil {
				return err
			}
		}
		resp = dto.FromProfessor(professor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssignSection makes the professor the instructor of sectionNo, taking it
// over from any previous instructor.
func (s *professorServiceImpl) AssignSection(ctx context.Context, sectionNo, ssn string) (*dto.SectionResponse, error) {
	var resp dto.SectionResponse
	var previous string
	err := s.repos.Update(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		professor, err := r.ProfessorRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		if p := section.Professor(); p != nil {
			previous = p.SSN()
		}
		professor.AgreeToTeach(section)
		resp = dto.FromSection(section)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sectionNo", sectionNo).Str("ssn", ssn).Str("previous", previous).Msg("Professor assigned to section")
	return &resp, nil
}
