package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// tester is satisfied by both *testing.T and *rapid.T.
type tester = require.TestingT

func mustCourse(t tester, no, name string, credits int) *Course {
	c, err := NewCourse(no, name, credits)
	require.NoError(t, err)
	return c
}

func mustStudent(t tester, name, ssn string) *Student {
	s, err := NewStudent(name, ssn, "Computer Science", "BSc")
	require.NoError(t, err)
	return s
}

func mustSection(t tester, c *Course, no string, capacity int) *Section {
	s, err := c.ScheduleSection(no, "Monday", "9:00 AM", "Room 101", capacity)
	require.NoError(t, err)
	return s
}

// gradeStudent puts a grade for course on the student's transcript by
// enrolling them in a throwaway section of that course.
func gradeStudent(t tester, st *Student, course *Course, grade string) {
	sec := mustSection(t, course, course.CourseNo()+"-G-"+st.SSN(), 1)
	require.True(t, sec.Enroll(st).Success)
	require.NoError(t, sec.PostGrade(st, grade))
}

func TestSection_Enroll_CapacityOne(t *testing.T) {
	fp := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, fp, "CS101-A", 1)

	a := mustStudent(t, "Alice", "S001")
	b := mustStudent(t, "Bob", "S002")

	assert.Equal(t, EnrollmentResult{Success: true, Message: "Enrollment successful"}, sec.Enroll(a))
	assert.Equal(t, EnrollmentResult{Success: false, Message: "Section is full"}, sec.Enroll(b))

	assert.Equal(t, []*Student{a}, sec.Students())
	assert.Equal(t, []*Section{sec}, a.Sections())
	assert.Empty(t, b.Sections())
}

func TestSection_Enroll_FillsToCapacity(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		capacity := rapid.IntRange(1, 40).Draw(r, "capacity")
		course := mustCourse(r, "CS101", "Functional Programming", 4)
		sec := mustSection(r, course, "CS101-A", capacity)

		for i := 0; i < capacity; i++ {
			st := mustStudent(r, "Student", fmt.Sprintf("S%03d", i))
			res := sec.Enroll(st)
			if !res.Success {
				r.Fatalf("student %d of %d rejected: %s", i+1, capacity, res.Message)
			}
		}

		extra := mustStudent(r, "Extra", "S999")
		res := sec.Enroll(extra)
		if res.Success || res.Message != MsgSectionFull {
			r.Fatalf("expected full section, got %+v", res)
		}
		if sec.EnrolledCount() != capacity {
			r.Fatalf("roster size %d, want %d", sec.EnrolledCount(), capacity)
		}
		if sec.ConfirmSeatAvailability() {
			r.Fatalf("full section still reports a free seat")
		}
	})
}

func TestSection_Enroll_PrerequisiteGate(t *testing.T) {
	fp := mustCourse(t, "CS101", "Functional Programming", 4)
	oop := mustCourse(t, "CS201", "Object-Oriented Programming", 4)
	require.NoError(t, oop.AddPrerequisite(fp))
	oopSec := mustSection(t, oop, "CS201-A", 25)

	tests := []struct {
		name  string
		grade string // empty means no transcript entry
		want  EnrollmentResult
	}{
		{
			name: "missing prerequisite",
			want: EnrollmentResult{Success: false, Message: "Missing prerequisite: CS101"},
		},
		{
			name:  "low grade",
			grade: "4.5",
			want:  EnrollmentResult{Success: false, Message: "Low grade for prerequisite CS101: 4.5"},
		},
		{
			name:  "passing grade",
			grade: "7.0",
			want:  EnrollmentResult{Success: true, Message: "Enrollment successful"},
		},
		{
			name:  "exactly the passing grade",
			grade: "5.0",
			want:  EnrollmentResult{Success: true, Message: "Enrollment successful"},
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustStudent(t, "Student", fmt.Sprintf("S10%d", i))
			if tt.grade != "" {
				gradeStudent(t, st, fp, tt.grade)
			}
			assert.Equal(t, tt.want, oopSec.Enroll(st))
			assert.Equal(t, tt.want.Success, oopSec.IsEnrolled(st))
		})
	}
}

func TestSection_Enroll_NonNumericGrade(t *testing.T) {
	fp := mustCourse(t, "CS101", "Functional Programming", 4)
	oop := mustCourse(t, "CS201", "Object-Oriented Programming", 4)
	require.NoError(t, oop.AddPrerequisite(fp))
	oopSec := mustSection(t, oop, "CS201-A", 25)

	st := mustStudent(t, "Student", "S001")
	gradeStudent(t, st, fp, "A+")

	res := oopSec.Enroll(st)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "invalid syntax")
	assert.False(t, oopSec.IsEnrolled(st))
}

func TestSection_Enroll_ShortCircuitsOnFirstFailingPrerequisite(t *testing.T) {
	a := mustCourse(t, "MATH101", "Calculus", 3)
	b := mustCourse(t, "CS101", "Functional Programming", 4)
	target := mustCourse(t, "CS301", "Compilers", 4)
	require.NoError(t, target.AddPrerequisite(a))
	require.NoError(t, target.AddPrerequisite(b))
	sec := mustSection(t, target, "CS301-A", 10)

	st := mustStudent(t, "Student", "S001")
	gradeStudent(t, st, b, "2.0")

	// MATH101 is checked first, so the low CS101 grade is never reported.
	assert.Equal(t, "Missing prerequisite: MATH101", sec.Enroll(st).Message)

	gradeStudent(t, st, a, "9.0")
	assert.Equal(t, "Low grade for prerequisite CS101: 2.0", sec.Enroll(st).Message)
}

func TestSection_Enroll_RejectsDuplicate(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)
	st := mustStudent(t, "Alice", "S001")

	require.True(t, sec.Enroll(st).Success)
	res := sec.Enroll(st)
	assert.False(t, res.Success)
	assert.Equal(t, "Student S001 is already enrolled in section CS101-A", res.Message)
	assert.Equal(t, 1, sec.EnrolledCount())
}

func TestSection_Enroll_NilStudent(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)

	res := sec.Enroll(nil)
	assert.False(t, res.Success)
	assert.Zero(t, sec.EnrolledCount())
}

func TestSection_Enroll_InternalFaultBecomesFailedResult(t *testing.T) {
	fp := mustCourse(t, "CS101", "Functional Programming", 4)
	oop := mustCourse(t, "CS201", "Object-Oriented Programming", 4)
	require.NoError(t, oop.AddPrerequisite(fp))
	sec := mustSection(t, oop, "CS201-A", 5)

	passed := mustStudent(t, "Alice", "S001")
	gradeStudent(t, passed, fp, "7.0")
	require.True(t, sec.Enroll(passed).Success)

	// A zero Student has no transcript, so the prerequisite check faults.
	broken := &Student{}
	var res EnrollmentResult
	require.NotPanics(t, func() { res = sec.Enroll(broken) })

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, []*Student{passed}, sec.Students())
	assert.False(t, sec.IsEnrolled(broken))
	assert.Empty(t, broken.Sections())
}

func TestSection_PostGrade(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)
	st := mustStudent(t, "Alice", "S001")

	err := sec.PostGrade(st, "8.0")
	require.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Zero(t, st.Transcript().Len())

	require.True(t, sec.Enroll(st).Success)
	require.NoError(t, sec.PostGrade(st, "8.0"))
	grade, ok := st.Transcript().Grade("CS101")
	require.True(t, ok)
	assert.Equal(t, "8.0", grade)

	require.NoError(t, sec.PostGrade(st, "6.5"))
	grade, _ = st.Transcript().Grade("CS101")
	assert.Equal(t, "6.5", grade)
	assert.Equal(t, 1, st.Transcript().Len())
}

func TestSection_PostGrade_WithoutCourseDropsGrade(t *testing.T) {
	sec, err := NewSection("X-1", "Friday", "1:00 PM", "Room 9", 3)
	require.NoError(t, err)
	st := mustStudent(t, "Alice", "S001")

	require.True(t, sec.Enroll(st).Success)
	require.NoError(t, sec.PostGrade(st, "9.0"))
	assert.Zero(t, st.Transcript().Len())
}

func TestNewSection_Validation(t *testing.T) {
	_, err := NewSection("", "Monday", "9:00 AM", "Room 1", 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = NewSection("A", "Monday", "9:00 AM", "", 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = NewSection("A", "Monday", "9:00 AM", "Room 1", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestSection_AccessorsReturnCopies(t *testing.T) {
	c := mustCourse(t, "CS101", "Functional Programming", 4)
	sec := mustSection(t, c, "CS101-A", 5)
	st := mustStudent(t, "Alice", "S001")
	require.True(t, sec.Enroll(st).Success)

	roster := sec.Students()
	roster[0] = nil
	assert.Equal(t, st, sec.Students()[0])
	assert.Equal(t, "CS101-A - Functional Programming", sec.String())
}
