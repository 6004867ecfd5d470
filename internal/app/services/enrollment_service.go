package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/events"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// EnrollmentService defines the interface for the enrollment and grading flow
type EnrollmentService interface {
	Enroll(ctx context.Context, sectionNo, ssn string) (*dto.EnrollmentOutcome, error)
	Drop(ctx context.Context, sectionNo, ssn string) error
	PostGrade(ctx context.Context, sectionNo, ssn string, grade float64) (*dto.TranscriptEntryResponse, error)
	GetTranscript(ctx context.Context, ssn string) (*dto.TranscriptResponse, error)
}

type enrollmentServiceImpl struct {
	repos     *repositories.Repositories
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(repos *repositories.Repositories, publisher events.Publisher, logger zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		repos:     repos,
		publisher: publisher,
		logger:    logger,
	}
}

// Enroll asks the section to admit the student. Unknown sections or
// students are errors; seat and prerequisite rejections come back as an
// unsuccessful outcome.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, sectionNo, ssn string) (*dto.EnrollmentOutcome, error) {
	var outcome dto.EnrollmentOutcome
	var courseNo string
	err := s.repos.Update(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}

		result := section.Enroll(student)
		outcome.Success = result.Success
		outcome.Message = result.Message
		outcome.Section = &dto.EnrollmentResponse{
			SectionNo: sectionNo,
			SSN:       ssn,
			Enrolled:  section.EnrolledCount(),
			Capacity:  section.Capacity(),
		}
		courseNo = courseNoOf(section)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Success {
		s.logger.Info().Str("sectionNo", sectionNo).Str("ssn", ssn).Str("reason", outcome.Message).Msg("Enrollment rejected")
		return &outcome, nil
	}

	s.logger.Info().Str("sectionNo", sectionNo).Str("ssn", ssn).Msg("Student enrolled")
	publish(ctx, s.publisher, s.logger, events.New(events.SectionEnrolled, sectionNo, courseNo, ssn))
	return &outcome, nil
}

// Drop withdraws the student from the section
func (s *enrollmentServiceImpl) Drop(ctx context.Context, sectionNo, ssn string) error {
	var courseNo string
	err := s.repos.Update(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		if !domain.Withdraw(student, section) {
			return fmt.Errorf("%w: %s in %s", apperrors.ErrNotEnrolled, ssn, sectionNo)
		}
		courseNo = courseNoOf(section)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("sectionNo", sectionNo).Str("ssn", ssn).Msg("Student dropped section")
	publish(ctx, s.publisher, s.logger, events.New(events.SectionDropped, sectionNo, courseNo, ssn))
	return nil
}

// PostGrade records a 0..10 grade for an enrolled student. A later grade
// for the same course replaces the earlier one.
func (s *enrollmentServiceImpl) PostGrade(ctx context.Context, sectionNo, ssn string, grade float64) (*dto.TranscriptEntryResponse, error) {
	if err := validateGrade(grade); err != nil {
		return nil, err
	}
	text := FormatGrade(grade)

	var resp dto.TranscriptEntryResponse
	err := s.repos.Update(func(r *repositories.Repositories) error {
		section, err := r.SectionRepository.GetBySectionNo(sectionNo)
		if err != nil {
			return err
		}
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		if err := section.PostGrade(student, text); err != nil {
			return fmt.Errorf("%w: %s in %s", err, ssn, sectionNo)
		}

		resp = dto.TranscriptEntryResponse{
			CourseNo:  courseNoOf(section),
			SectionNo: sectionNo,
			Grade:     text,
		}
		if c := section.Course(); c != nil {
			resp.CourseName = c.CourseName()
			resp.Credits = c.Credits()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sectionNo", sectionNo).Str("ssn", ssn).Str("grade", text).Msg("Grade posted")
	publish(ctx, s.publisher, s.logger, events.New(events.GradePosted, sectionNo, resp.CourseNo, ssn).WithGrade(text))
	return &resp, nil
}

// GetTranscript returns the student's graded courses with the credit
// weighted average
func (s *enrollmentServiceImpl) GetTranscript(ctx context.Context, ssn string) (*dto.TranscriptResponse, error) {
	var resp dto.TranscriptResponse
	err := s.repos.View(func(r *repositories.Repositories) error {
		student, err := r.StudentRepository.GetBySSN(ssn)
		if err != nil {
			return err
		}
		resp = dto.FromTranscript(student)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
