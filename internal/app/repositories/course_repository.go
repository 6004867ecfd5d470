package repositories

import (
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// CourseRepository holds the course catalog keyed by course number.
type CourseRepository struct {
	store *keyedStore[*domain.Course]
}

// NewCourseRepository creates an empty course repository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		store: newKeyedStore[*domain.Course](apperrors.ErrCourseNotFound, apperrors.ErrCourseAlreadyExists),
	}
}

// Create registers a course. Duplicate course numbers return ErrCourseAlreadyExists.
func (r *CourseRepository) Create(course *domain.Course) error {
	return r.store.create(course.CourseNo(), course)
}

// GetByCourseNo retrieves a course by its catalog code
func (r *CourseRepository) GetByCourseNo(courseNo string) (*domain.Course, error) {
	return r.store.get(courseNo)
}

// Exists reports whether courseNo is registered
func (r *CourseRepository) Exists(courseNo string) bool {
	return r.store.exists(courseNo)
}

// GetAll returns every course in registration order
func (r *CourseRepository) GetAll() []*domain.Course {
	return r.store.all()
}

// Dependents returns the courses that list course as a direct prerequisite.
func (r *CourseRepository) Dependents(course *domain.Course) []*domain.Course {
	var out []*domain.Course
	for _, c := range r.store.all() {
		for _, p := range c.Prerequisites() {
			if p == course {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Delete removes a course from the catalog
func (r *CourseRepository) Delete(courseNo string) error {
	return r.store.delete(courseNo)
}

// Count returns the number of registered courses
func (r *CourseRepository) Count() int {
	return r.store.count()
}
