package repositories

import (
	"sync"
)

// Repositories holds all the repository instances. The domain objects they
// hold are not safe for concurrent use, so every access goes through Update
// or View.
type Repositories struct {
	mu sync.RWMutex

	CourseRepository    *CourseRepository
	SectionRepository   *SectionRepository
	StudentRepository   *StudentRepository
	ProfessorRepository *ProfessorRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository:    NewCourseRepository(),
		SectionRepository:   NewSectionRepository(),
		StudentRepository:   NewStudentRepository(),
		ProfessorRepository: NewProfessorRepository(),
	}
}

// Update runs fn with exclusive access to the registry.
func (r *Repositories) Update(fn func(*Repositories) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r)
}

// View runs fn with shared read access to the registry.
func (r *Repositories) View(fn func(*Repositories) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn(r)
}
