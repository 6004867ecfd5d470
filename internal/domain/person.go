package domain

import "github.com/yigit/registrar/internal/pkg/apperrors"

// Role distinguishes the Person variants.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleProfessor Role = "PROFESSOR"
)

// Person is the identity shared by students and professors.
type Person interface {
	Name() string
	SSN() string
	Role() Role
}

type person struct {
	name string
	ssn  string
}

func newPerson(name, ssn string) (person, error) {
	if name == "" || ssn == "" {
		return person{}, apperrors.InvalidArgument("person name and SSN cannot be empty")
	}
	return person{name: name, ssn: ssn}, nil
}

func (p *person) Name() string { return p.name }
func (p *person) SSN() string { return p.ssn }

// removeSection deletes section from list in place and reports whether it
// was present.
func removeSection(list []*Section, section *Section) ([]*Section, bool) {
	for i, s := range list {
		if s == section {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

func containsSection(list []*Section, section *Section) bool {
	for _, s := range list {
		if s == section {
			return true
		}
	}
	return false
}
