package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/events"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	repos       *repositories.Repositories
	publisher   *recordingPublisher
	catalog     CatalogService
	students    StudentService
	professors  ProfessorService
	enrollments EnrollmentService
	reports     ReportService
}

func newFixture(t *testing.T) *fixture {
	repos := repositories.NewRepositories()
	pub := &recordingPublisher{}
	lgr := zerolog.Nop()
	f := &fixture{
		repos:       repos,
		publisher:   pub,
		catalog:     NewCatalogService(repos, pub, lgr),
		students:    NewStudentService(repos, pub, lgr),
		professors:  NewProfessorService(repos, lgr),
		enrollments: NewEnrollmentService(repos, pub, lgr),
		reports:     NewReportService(repos),
	}
	return f
}

// seedCatalog registers CS101 and CS201 (requires CS101) with one section
// each, plus a single student.
func (f *fixture) seedCatalog(t *testing.T, capacity int) {
	ctx := context.Background()
	_, err := f.catalog.CreateCourse(ctx, &dto.CreateCourseRequest{CourseNo: "CS101", Name: "Functional Programming", Credits: 4})
	require.NoError(t, err)
	_, err = f.catalog.CreateCourse(ctx, &dto.CreateCourseRequest{CourseNo: "CS201", Name: "Object-Oriented Programming", Credits: 4, Prerequisites: []string{"CS101"}})
	require.NoError(t, err)
	_, err = f.catalog.ScheduleSection(ctx, "CS101", &dto.SectionRequest{SectionNo: "CS101-A", DayOfWeek: "Monday", TimeOfDay: "9:00 AM", Room: "Room 101", Capacity: capacity})
	require.NoError(t, err)
	_, err = f.catalog.ScheduleSection(ctx, "CS201", &dto.SectionRequest{SectionNo: "CS201-A", DayOfWeek: "Tuesday", TimeOfDay: "10:00 AM", Room: "Room 102", Capacity: capacity})
	require.NoError(t, err)
	_, err = f.students.CreateStudent(ctx, &dto.CreateStudentRequest{Name: "Alice", SSN: "S001", Major: "Computer Science", Degree: "BSc"})
	require.NoError(t, err)
}

func TestFormatGrade(t *testing.T) {
	assert.Equal(t, "8.0", FormatGrade(8))
	assert.Equal(t, "0.0", FormatGrade(0))
	assert.Equal(t, "7.25", FormatGrade(7.25))
	assert.Equal(t, "10.0", FormatGrade(10))
}

func TestCatalogService_CreateCourse(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 2)
	ctx := context.Background()

	_, err := f.catalog.CreateCourse(ctx, &dto.CreateCourseRequest{CourseNo: "CS101", Name: "Again", Credits: 3})
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)

	_, err = f.catalog.CreateCourse(ctx, &dto.CreateCourseRequest{CourseNo: "CS301", Name: "Databases", Credits: 3, Prerequisites: []string{"CS999"}})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	_, err = f.catalog.GetCourse(ctx, "CS301")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound, "failed create leaves nothing behind")

	course, err := f.catalog.GetCourse(ctx, "CS201")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)
	assert.Equal(t, []string{"CS201-A"}, course.Sections)
}

func TestCatalogService_Prerequisites(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 2)
	ctx := context.Background()

	_, err := f.catalog.AddPrerequisite(ctx, "CS101", "CS201")
	assert.ErrorIs(t, err, apperrors.ErrCyclicPrerequisite)

	course, err := f.catalog.RemovePrerequisite(ctx, "CS201", "CS101")
	require.NoError(t, err)
	assert.Empty(t, course.Prerequisites)

	_, err = f.catalog.RemovePrerequisite(ctx, "CS201", "CS101")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	course, err = f.catalog.AddPrerequisite(ctx, "CS201", "CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101"}, course.Prerequisites)
}

func TestCatalogService_ScheduleSection_UniqueNumbers(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 2)

	_, err := f.catalog.ScheduleSection(context.Background(), "CS201", &dto.SectionRequest{SectionNo: "CS101-A", DayOfWeek: "Friday", TimeOfDay: "1:00 PM", Room: "Room 9", Capacity: 5})
	assert.ErrorIs(t, err, apperrors.ErrSectionAlreadyExists)

	course, err := f.catalog.GetCourse(context.Background(), "CS201")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS201-A"}, course.Sections)
}

func TestCatalogService_DeleteCourse(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 2)
	ctx := context.Background()

	err := f.catalog.DeleteCourse(ctx, "CS101")
	require.ErrorIs(t, err, apperrors.ErrCourseHasDependents)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	outcome, err := f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)

	require.NoError(t, f.catalog.DeleteCourse(ctx, "CS201"))
	require.NoError(t, f.catalog.DeleteCourse(ctx, "CS101"))

	_, err = f.catalog.GetSection(ctx, "CS101-A")
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
	student, err := f.students.GetStudent(ctx, "S001")
	require.NoError(t, err)
	assert.Empty(t, student.Sections)

	assert.Equal(t, []events.Type{
		events.SectionEnrolled,
		events.SectionCancelled,
		events.SectionDropped,
		events.SectionCancelled,
	}, f.publisher.types())
}

func TestCatalogService_ListSections_Available(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 1)
	ctx := context.Background()

	outcome, err := f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)

	all, err := f.catalog.ListSections(ctx, false, 1, 10)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	open, err := f.catalog.ListSections(ctx, true, 1, 10)
	require.NoError(t, err)
	items := open.Items.([]dto.SectionResponse)
	require.Len(t, items, 1)
	assert.Equal(t, "CS201-A", items[0].SectionNo)
}

func TestEnrollmentService_PrerequisiteFlow(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 5)
	ctx := context.Background()

	outcome, err := f.enrollments.Enroll(ctx, "CS201-A", "S001")
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Missing prerequisite: CS101", outcome.Message)

	outcome, err = f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)
	assert.Equal(t, "Enrollment successful", outcome.Message)

	entry, err := f.enrollments.PostGrade(ctx, "CS101-A", "S001", 4.5)
	require.NoError(t, err)
	assert.Equal(t, "4.5", entry.Grade)

	outcome, err = f.enrollments.Enroll(ctx, "CS201-A", "S001")
	require.NoError(t, err)
	assert.Equal(t, "Low grade for prerequisite CS101: 4.5", outcome.Message)

	_, err = f.enrollments.PostGrade(ctx, "CS101-A", "S001", 7)
	require.NoError(t, err)
	outcome, err = f.enrollments.Enroll(ctx, "CS201-A", "S001")
	require.NoError(t, err)
	assert.True(t, outcome.Success)

	transcript, err := f.enrollments.GetTranscript(ctx, "S001")
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 1)
	assert.Equal(t, "7.0", transcript.Entries[0].Grade)
	require.NotNil(t, transcript.GPA)
	assert.InDelta(t, 7.0, *transcript.GPA, 1e-9)
}

func TestEnrollmentService_Errors(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 5)
	ctx := context.Background()

	_, err := f.enrollments.Enroll(ctx, "NOPE", "S001")
	assert.ErrorIs(t, err, apperrors.ErrSectionNotFound)
	_, err = f.enrollments.Enroll(ctx, "CS101-A", "S999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = f.enrollments.PostGrade(ctx, "CS101-A", "S001", 8)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	_, err = f.enrollments.PostGrade(ctx, "CS101-A", "S001", 11)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	assert.ErrorIs(t, f.enrollments.Drop(ctx, "CS101-A", "S001"), apperrors.ErrNotEnrolled)
}

func TestEnrollmentService_DropFreesSeat(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 1)
	ctx := context.Background()
	_, err := f.students.CreateStudent(ctx, &dto.CreateStudentRequest{Name: "Bob", SSN: "S002", Major: "Math", Degree: "BSc"})
	require.NoError(t, err)

	outcome, err := f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)

	outcome, err = f.enrollments.Enroll(ctx, "CS101-A", "S002")
	require.NoError(t, err)
	assert.Equal(t, "Section is full", outcome.Message)

	require.NoError(t, f.enrollments.Drop(ctx, "CS101-A", "S001"))
	outcome, err = f.enrollments.Enroll(ctx, "CS101-A", "S002")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, 1, outcome.Section.Enrolled)
}

func TestEnrollmentService_PublishFailureIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 1)
	f.publisher.err = errors.New("broker down")

	outcome, err := f.enrollments.Enroll(context.Background(), "CS101-A", "S001")
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, []events.Type{events.SectionEnrolled}, f.publisher.types())
}

func TestEnrollmentService_ConcurrentEnrollRespectsCapacity(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 3)
	ctx := context.Background()

	const students = 20
	ssns := make([]string, students)
	for i := range ssns {
		ssns[i] = "X" + string(rune('A'+i))
		_, err := f.students.CreateStudent(ctx, &dto.CreateStudentRequest{Name: "Student", SSN: ssns[i], Major: "CS", Degree: "BSc"})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for _, ssn := range ssns {
		wg.Add(1)
		go func(ssn string) {
			defer wg.Done()
			_, _ = f.enrollments.Enroll(ctx, "CS101-A", ssn)
		}(ssn)
	}
	wg.Wait()

	section, err := f.catalog.GetSection(ctx, "CS101-A")
	require.NoError(t, err)
	assert.Equal(t, 3, section.Enrolled)
	assert.Len(t, section.Students, 3)
}

func TestStudentService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 5)
	ctx := context.Background()

	_, err := f.students.CreateStudent(ctx, &dto.CreateStudentRequest{Name: "Alice", SSN: "S001", Major: "CS", Degree: "BSc"})
	assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)

	_, err = f.students.UpdateStudent(ctx, "S001", &dto.UpdateStudentRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	updated, err := f.students.UpdateStudent(ctx, "S001", &dto.UpdateStudentRequest{Major: "Mathematics"})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", updated.Major)
	assert.Equal(t, "BSc", updated.Degree)

	outcome, err := f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)

	require.NoError(t, f.students.DeleteStudent(ctx, "S001"))
	section, err := f.catalog.GetSection(ctx, "CS101-A")
	require.NoError(t, err)
	assert.Zero(t, section.Enrolled)
	assert.ErrorIs(t, f.students.DeleteStudent(ctx, "S001"), apperrors.ErrStudentNotFound)

	list, err := f.students.ListStudents(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Pagination.TotalItems)
}

func TestProfessorService_AssignSection(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 5)
	ctx := context.Background()

	for _, req := range []dto.CreateProfessorRequest{
		{Name: "Dr. Smith", SSN: "P001", Title: "Professor", Department: "Computer Science"},
		{Name: "Dr. Jones", SSN: "P002", Title: "Lecturer", Department: "Computer Science"},
	} {
		req := req
		_, err := f.professors.CreateProfessor(ctx, &req)
		require.NoError(t, err)
	}

	section, err := f.professors.AssignSection(ctx, "CS101-A", "P001")
	require.NoError(t, err)
	assert.Equal(t, "P001", section.ProfessorSSN)

	section, err = f.professors.AssignSection(ctx, "CS101-A", "P002")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jones", section.ProfessorName)

	smith, err := f.professors.GetProfessor(ctx, "P001")
	require.NoError(t, err)
	assert.Empty(t, smith.Sections)

	_, err = f.professors.AssignSection(ctx, "CS101-A", "P404")
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)

	updated, err := f.professors.UpdateProfessor(ctx, "P002", &dto.UpdateProfessorRequest{Title: "Associate Professor"})
	require.NoError(t, err)
	assert.Equal(t, "Associate Professor", updated.Title)
}

func TestReportService(t *testing.T) {
	f := newFixture(t)
	f.seedCatalog(t, 4)
	ctx := context.Background()

	outcome, err := f.enrollments.Enroll(ctx, "CS101-A", "S001")
	require.NoError(t, err)
	require.True(t, outcome.Success)
	_, err = f.enrollments.PostGrade(ctx, "CS101-A", "S001", 9)
	require.NoError(t, err)

	dash, err := f.reports.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dash.Courses)
	assert.Equal(t, 2, dash.Sections)
	assert.Equal(t, 1, dash.Students)
	assert.Equal(t, 1, dash.Enrollments)
	assert.Equal(t, 8, dash.TotalCapacity)
	assert.Equal(t, 7, dash.AvailableSeats)
	assert.Equal(t, 1, dash.GradedCourses)
	assert.Equal(t, 2, dash.UnstaffedSections)

	stats, err := f.reports.CourseStatistics(ctx, 1, 10)
	require.NoError(t, err)
	rows := stats.Items.([]dto.CourseStatsResponse)
	require.Len(t, rows, 2)
	assert.Equal(t, "CS101", rows[0].CourseNo)
	assert.InDelta(t, 25.0, rows[0].Utilization, 1e-9)
	assert.Equal(t, 1, rows[1].PrerequisiteCount)
	assert.Zero(t, rows[1].Utilization)

	rosters, err := f.reports.SectionRosters(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, rosters.Items, 1)
	assert.Equal(t, 2, rosters.Pagination.TotalPages)
}
