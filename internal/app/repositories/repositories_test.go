package repositories

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func TestCourseRepository_CreateGetDelete(t *testing.T) {
	repo := NewCourseRepository()
	fp, err := domain.NewCourse("CS101", "Functional Programming", 4)
	require.NoError(t, err)
	oop, err := domain.NewCourse("CS201", "Object-Oriented Programming", 4)
	require.NoError(t, err)

	require.NoError(t, repo.Create(oop))
	require.NoError(t, repo.Create(fp))

	err = repo.Create(fp)
	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	got, err := repo.GetByCourseNo("CS101")
	require.NoError(t, err)
	assert.Same(t, fp, got)

	// insertion order, not key order
	assert.Equal(t, []*domain.Course{oop, fp}, repo.GetAll())
	assert.Equal(t, 2, repo.Count())

	require.NoError(t, repo.Delete("CS201"))
	_, err = repo.GetByCourseNo("CS201")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, repo.Delete("CS201"), apperrors.ErrResourceNotFound)
	assert.False(t, repo.Exists("CS201"))
	assert.Equal(t, []*domain.Course{fp}, repo.GetAll())
}

func TestCourseRepository_Dependents(t *testing.T) {
	repo := NewCourseRepository()
	fp, _ := domain.NewCourse("CS101", "Functional Programming", 4)
	oop, _ := domain.NewCourse("CS201", "Object-Oriented Programming", 4)
	db, _ := domain.NewCourse("CS301", "Databases", 3)
	require.NoError(t, oop.AddPrerequisite(fp))
	require.NoError(t, db.AddPrerequisite(oop))
	for _, c := range []*domain.Course{fp, oop, db} {
		require.NoError(t, repo.Create(c))
	}

	assert.Equal(t, []*domain.Course{oop}, repo.Dependents(fp))
	assert.Empty(t, repo.Dependents(db))
}

func TestSectionRepository_GetAvailable(t *testing.T) {
	repo := NewSectionRepository()
	c, _ := domain.NewCourse("CS101", "Functional Programming", 4)
	full, err := c.ScheduleSection("CS101-A", "Monday", "9:00 AM", "Room 101", 1)
	require.NoError(t, err)
	open, err := c.ScheduleSection("CS101-B", "Tuesday", "9:00 AM", "Room 102", 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(full))
	require.NoError(t, repo.Create(open))

	st, _ := domain.NewStudent("Alice", "S001", "CS", "BSc")
	require.True(t, full.Enroll(st).Success)

	assert.Equal(t, []*domain.Section{open}, repo.GetAvailable())
	assert.ErrorIs(t, repo.Create(open), apperrors.ErrSectionAlreadyExists)
}

func TestPeopleRepositories(t *testing.T) {
	students := NewStudentRepository()
	st, _ := domain.NewStudent("Alice", "S001", "CS", "BSc")
	require.NoError(t, students.Create(st))
	assert.ErrorIs(t, students.Create(st), apperrors.ErrStudentAlreadyExists)
	_, err := students.GetBySSN("S999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	require.NoError(t, students.Delete("S001"))
	assert.Zero(t, students.Count())

	professors := NewProfessorRepository()
	p, _ := domain.NewProfessor("Dr. Smith", "P001", "Professor", "Computer Science")
	require.NoError(t, professors.Create(p))
	assert.ErrorIs(t, professors.Create(p), apperrors.ErrProfessorAlreadyExists)
	got, err := professors.GetBySSN("P001")
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Equal(t, 1, professors.Count())
}

func TestRepositories_UpdateIsExclusive(t *testing.T) {
	repos := NewRepositories()
	c, _ := domain.NewCourse("CS101", "Functional Programming", 4)
	sec, err := c.ScheduleSection("CS101-A", "Monday", "9:00 AM", "Room 101", 10)
	require.NoError(t, err)
	require.NoError(t, repos.Update(func(r *Repositories) error {
		return r.SectionRepository.Create(sec)
	}))

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st, _ := domain.NewStudent("Student", fmt.Sprintf("S%03d", i), "CS", "BSc")
			_ = repos.Update(func(r *Repositories) error {
				s, err := r.SectionRepository.GetBySectionNo("CS101-A")
				if err != nil {
					return err
				}
				if s.Enroll(st).Success {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
				return nil
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	_ = repos.View(func(r *Repositories) error {
		s, err := r.SectionRepository.GetBySectionNo("CS101-A")
		require.NoError(t, err)
		assert.Equal(t, 10, s.EnrolledCount())
		return nil
	})
}
