package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/domain"
)

func TestFromSection(t *testing.T) {
	c, err := domain.NewCourse("CS101", "Functional Programming", 4)
	require.NoError(t, err)
	sec, err := c.ScheduleSection("CS101-A", "Monday", "9:00 AM", "Room 101", 30)
	require.NoError(t, err)
	prof, err := domain.NewProfessor("Dr. Smith", "P001", "Professor", "Computer Science")
	require.NoError(t, err)
	prof.AgreeToTeach(sec)
	st, err := domain.NewStudent("Alice", "S001", "CS", "BSc")
	require.NoError(t, err)
	require.True(t, sec.Enroll(st).Success)

	resp := FromSection(sec)
	assert.Equal(t, "CS101", resp.CourseNo)
	assert.Equal(t, 1, resp.Enrolled)
	assert.Equal(t, 29, resp.SeatsLeft)
	assert.Equal(t, "P001", resp.ProfessorSSN)
	assert.Equal(t, []string{"S001"}, resp.Students)

	assert.Equal(t, []string{"CS101-A"}, FromCourse(c).Sections)
	assert.Equal(t, []string{"CS101-A"}, FromStudent(st).Sections)
	assert.Equal(t, []string{"CS101-A"}, FromProfessor(prof).Sections)
}

func TestFromTranscript(t *testing.T) {
	st, err := domain.NewStudent("Alice", "S001", "CS", "BSc")
	require.NoError(t, err)

	empty := FromTranscript(st)
	assert.Empty(t, empty.Entries)
	assert.Nil(t, empty.GPA)

	oop, _ := domain.NewCourse("CS201", "Object-Oriented Programming", 2)
	fp, _ := domain.NewCourse("CS101", "Functional Programming", 4)
	for _, tc := range []struct {
		course *domain.Course
		grade  string
	}{{oop, "4.0"}, {fp, "10.0"}} {
		sec, err := tc.course.ScheduleSection(tc.course.CourseNo()+"-A", "Monday", "9:00 AM", "Room 1", 5)
		require.NoError(t, err)
		require.True(t, sec.Enroll(st).Success)
		require.NoError(t, sec.PostGrade(st, tc.grade))
	}

	resp := FromTranscript(st)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "CS101", resp.Entries[0].CourseNo)
	assert.Equal(t, "CS201", resp.Entries[1].CourseNo)
	assert.Equal(t, 6, resp.TotalCredits)
	require.NotNil(t, resp.GPA)
	assert.InDelta(t, 8.0, *resp.GPA, 1e-9)
}
