package domain

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Student is a Person who attends sections and owns a transcript.
type Student struct {
	person
	major      string
	degree     string
	sections   []*Section
	transcript *Transcript
}

var _ Person = (*Student)(nil)

// NewStudent validates the profile fields and creates the student with an
// empty transcript.
func NewStudent(name, ssn, major, degree string) (*Student, error) {
	p, err := newPerson(name, ssn)
	if err != nil {
		return nil, err
	}
	if major == "" || degree == "" {
		return nil, apperrors.InvalidArgument("student major and degree cannot be empty")
	}

	return &Student{
		person:     p,
		major:      major,
		degree:     degree,
		transcript: NewTranscript(),
	}, nil
}

func (s *Student) Role() Role { return RoleStudent }
func (s *Student) Major() string { return s.major }
func (s *Student) Degree() string { return s.degree }

// SetMajor updates the major; empty values are rejected.
func (s *Student) SetMajor(major string) error {
	if major == "" {
		return apperrors.InvalidArgument("student major cannot be empty")
	}
	s.major = major
	return nil
}

// SetDegree updates the degree; empty values are rejected.
func (s *Student) SetDegree(degree string) error {
	if degree == "" {
		return apperrors.InvalidArgument("student degree cannot be empty")
	}
	s.degree = degree
	return nil
}

// Sections returns a copy of the attended sections.
func (s *Student) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Transcript returns the student's own transcript. Changes made through it
// are visible to the student.
func (s *Student) Transcript() *Transcript { return s.transcript }

// AttendSection records section on the student's side. Repeated calls are
// no-ops.
func (s *Student) AttendSection(section *Section) {
	if !containsSection(s.sections, section) {
		s.sections = append(s.sections, section)
	}
}

// DropSection removes section from the student's side only and reports
// whether it was present. The section roster is left alone; use Withdraw to
// update both sides.
func (s *Student) DropSection(section *Section) bool {
	var ok bool
	s.sections, ok = removeSection(s.sections, section)
	return ok
}

func (s *Student) String() string {
	return fmt.Sprintf("%s (%s) - %s, %s", s.name, s.ssn, s.major, s.degree)
}
