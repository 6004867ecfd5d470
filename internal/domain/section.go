package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// PassingGrade is the lowest prerequisite grade that still opens enrollment.
const PassingGrade = 5.0

// Enrollment outcome messages.
const (
	MsgEnrollmentSuccessful = "Enrollment successful"
	MsgSectionFull          = "Section is full"
)

// EnrollmentResult is the outcome of Section.Enroll. Rejections are reported
// here rather than as errors so callers can show Message directly.
type EnrollmentResult struct {
	Success bool
	Message string
}

func enrolled() EnrollmentResult {
	return EnrollmentResult{Success: true, Message: MsgEnrollmentSuccessful}
}

func rejected(format string, args ...interface{}) EnrollmentResult {
	return EnrollmentResult{Success: false, Message: fmt.Sprintf(format, args...)}
}

// Section is one scheduled offering of a course. The roster size is bounded by
// the seating capacity at enrollment time.
type Section struct {
	sectionNo string
	dayOfWeek string
	timeOfDay string
	room      string
	capacity  int

	course    *Course
	professor *Professor
	students  []*Student
}

// NewSection builds an unattached section. Most callers should go through
// Course.ScheduleSection instead so the course link is established.
func NewSection(sectionNo, dayOfWeek, timeOfDay, room string, capacity int) (*Section, error) {
	if sectionNo == "" || room == "" {
		return nil, apperrors.InvalidArgument("section number and room cannot be empty")
	}
	if capacity <= 0 {
		return nil, apperrors.InvalidArgument("seating capacity must be positive")
	}

	return &Section{
		sectionNo: sectionNo,
		dayOfWeek: dayOfWeek,
		timeOfDay: timeOfDay,
		room:      room,
		capacity:  capacity,
	}, nil
}

func (s *Section) SectionNo() string { return s.sectionNo }
func (s *Section) DayOfWeek() string { return s.dayOfWeek }
func (s *Section) TimeOfDay() string { return s.timeOfDay }
func (s *Section) Room() string { return s.room }
func (s *Section) Capacity() int { return s.capacity }

// Course returns the owning course, or nil for a detached section.
func (s *Section) Course() *Course { return s.course }

// SetCourse rebinds the section to course.
func (s *Section) SetCourse(course *Course) { s.course = course }

// Professor returns the assigned instructor, if any.
func (s *Section) Professor() *Professor { return s.professor }

// SetProfessor replaces the assigned instructor. Use Professor.AgreeToTeach
// to keep both sides of the association in step.
func (s *Section) SetProfessor(professor *Professor) { s.professor = professor }

// Students returns a copy of the roster.
func (s *Section) Students() []*Student {
	out := make([]*Student, len(s.students))
	copy(out, s.students)
	return out
}

// EnrolledCount returns the roster size.
func (s *Section) EnrolledCount() int { return len(s.students) }

// ConfirmSeatAvailability reports whether another student fits.
func (s *Section) ConfirmSeatAvailability() bool {
	return len(s.students) < s.capacity
}

// IsEnrolled reports whether student is on the roster.
func (s *Section) IsEnrolled(student *Student) bool {
	for _, st := range s.students {
		if st == student {
			return true
		}
	}
	return false
}

// Enroll runs the seat and prerequisite checks and adds student to the
// roster when they pass. It always returns a result; internal faults are
// reported as a failed result carrying the fault text.
func (s *Section) Enroll(student *Student) (result EnrollmentResult) {
	defer func() {
		if r := recover(); r != nil {
			result = rejected("%v", r)
		}
	}()

	if student == nil {
		return rejected("student is required")
	}
	if s.IsEnrolled(student) {
		return rejected("Student %s is already enrolled in section %s", student.SSN(), s.sectionNo)
	}
	if !s.ConfirmSeatAvailability() {
		return rejected(MsgSectionFull)
	}
	if res, ok := s.checkPrerequisites(student); !ok {
		return res
	}

	s.students = append(s.students, student)
	student.AttendSection(s)
	return enrolled()
}

// checkPrerequisites walks the course prerequisites in order and stops at the
// first one the student has not passed.
func (s *Section) checkPrerequisites(student *Student) (EnrollmentResult, bool) {
	if s.course == nil || !s.course.HasPrerequisites() {
		return EnrollmentResult{}, true
	}

	transcript := student.Transcript()
	for _, prereq := range s.course.Prerequisites() {
		courseNo := prereq.CourseNo()
		grade, ok := transcript.Grade(courseNo)
		if !ok {
			return rejected("Missing prerequisite: %s", courseNo), false
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(grade), 64)
		if err != nil {
			return rejected("%s", err.Error()), false
		}
		if value < PassingGrade {
			return rejected("Low grade for prerequisite %s: %s", courseNo, grade), false
		}
	}
	return EnrollmentResult{}, true
}

// PostGrade records grade on the student's transcript under this section's
// course. The student must be on the roster. A section without a course
// drops the grade.
func (s *Section) PostGrade(student *Student, grade string) error {
	if student == nil || !s.IsEnrolled(student) {
		return apperrors.ErrNotEnrolled
	}
	student.Transcript().AddEntry(s, grade)
	return nil
}

// RemoveStudent takes student off the roster. It does not touch the
// student's own section list; see Withdraw.
func (s *Section) RemoveStudent(student *Student) bool {
	for i, st := range s.students {
		if st == student {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Section) String() string {
	name := "Unknown"
	if s.course != nil {
		name = s.course.CourseName()
	}
	return fmt.Sprintf("%s - %s", s.sectionNo, name)
}
