package domain

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Professor is a Person who teaches sections.
type Professor struct {
	person
	title      string
	department string
	sections   []*Section
}

var _ Person = (*Professor)(nil)

// NewProfessor validates the profile fields and creates the professor.
func NewProfessor(name, ssn, title, department string) (*Professor, error) {
	p, err := newPerson(name, ssn)
	if err != nil {
		return nil, err
	}
	if title == "" || department == "" {
		return nil, apperrors.InvalidArgument("professor title and department cannot be empty")
	}

	return &Professor{
		person:     p,
		title:      title,
		department: department,
	}, nil
}

func (p *Professor) Role() Role { return RoleProfessor }
func (p *Professor) Title() string { return p.title }
func (p *Professor) Department() string { return p.department }

// SetTitle updates the academic title; empty values are rejected.
func (p *Professor) SetTitle(title string) error {
	if title == "" {
		return apperrors.InvalidArgument("professor title cannot be empty")
	}
	p.title = title
	return nil
}

// SetDepartment updates the department; empty values are rejected.
func (p *Professor) SetDepartment(department string) error {
	if department == "" {
		return apperrors.InvalidArgument("professor department cannot be empty")
	}
	p.department = department
	return nil
}

// Sections returns a copy of the sections this professor teaches.
func (p *Professor) Sections() []*Section {
	out := make([]*Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// AgreeToTeach assigns p to section. A section has at most one professor, so
// a previous instructor loses the section from their own list.
func (p *Professor) AgreeToTeach(section *Section) {
	if section == nil || containsSection(p.sections, section) {
		return
	}
	if prev := section.Professor(); prev != nil && prev != p {
		prev.releaseSection(section)
	}
	p.sections = append(p.sections, section)
	section.SetProfessor(p)
}

// releaseSection drops section from p's list without touching the section.
func (p *Professor) releaseSection(section *Section) bool {
	var ok bool
	p.sections, ok = removeSection(p.sections, section)
	return ok
}

func (p *Professor) String() string {
	return fmt.Sprintf("%s %s - %s", p.title, p.name, p.department)
}
