package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func TestNewStudent(t *testing.T) {
	_, err := NewStudent("", "S001", "CS", "BSc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = NewStudent("Alice", "", "CS", "BSc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = NewStudent("Alice", "S001", "", "BSc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = NewStudent("Alice", "S001", "CS", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	st, err := NewStudent("Alice", "S001", "CS", "BSc")
	require.NoError(t, err)

	var p Person = st
	assert.Equal(t, "Alice", p.Name())
	assert.Equal(t, "S001", p.SSN())
	assert.Equal(t, RoleStudent, p.Role())
	assert.NotNil(t, st.Transcript())
	assert.Same(t, st.Transcript(), st.Transcript())
	assert.Equal(t, "Alice (S001) - CS, BSc", st.String())

	require.NoError(t, st.SetMajor("Mathematics"))
	require.NoError(t, st.SetDegree("MSc"))
	assert.ErrorIs(t, st.SetMajor(""), apperrors.ErrInvalidArgument)
	assert.Equal(t, "Mathematics", st.Major())
	assert.Equal(t, "MSc", st.Degree())
}

func TestStudent_AttendAndDropSection(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)
	st := mustStudent(t, "Alice", "S001")

	st.AttendSection(sec)
	st.AttendSection(sec)
	assert.Equal(t, []*Section{sec}, st.Sections())

	assert.True(t, st.DropSection(sec))
	assert.False(t, st.DropSection(sec))
	assert.Empty(t, st.Sections())
}

func TestStudent_DropSectionIsOneSided(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)
	st := mustStudent(t, "Alice", "S001")
	require.True(t, sec.Enroll(st).Success)

	assert.True(t, st.DropSection(sec))
	assert.True(t, sec.IsEnrolled(st), "roster is untouched by DropSection")
}

func TestNewProfessor(t *testing.T) {
	_, err := NewProfessor("Dr. Smith", "P001", "", "Computer Science")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = NewProfessor("Dr. Smith", "", "Professor", "Computer Science")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	p, err := NewProfessor("Dr. Smith", "P001", "Professor", "Computer Science")
	require.NoError(t, err)
	assert.Equal(t, RoleProfessor, p.Role())
	assert.Equal(t, "Professor Dr. Smith - Computer Science", p.String())

	require.NoError(t, p.SetTitle("Associate Professor"))
	require.NoError(t, p.SetDepartment("Mathematics"))
	assert.ErrorIs(t, p.SetDepartment(""), apperrors.ErrInvalidArgument)
	assert.Equal(t, "Associate Professor", p.Title())
	assert.Equal(t, "Mathematics", p.Department())
}

func TestProfessor_AgreeToTeach(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)

	smith, err := NewProfessor("Dr. Smith", "P001", "Professor", "Computer Science")
	require.NoError(t, err)
	jones, err := NewProfessor("Dr. Jones", "P002", "Lecturer", "Computer Science")
	require.NoError(t, err)

	smith.AgreeToTeach(sec)
	smith.AgreeToTeach(sec)
	assert.Equal(t, []*Section{sec}, smith.Sections())
	assert.Same(t, smith, sec.Professor())

	jones.AgreeToTeach(sec)
	assert.Same(t, jones, sec.Professor())
	assert.Equal(t, []*Section{sec}, jones.Sections())
	assert.Empty(t, smith.Sections())
}
