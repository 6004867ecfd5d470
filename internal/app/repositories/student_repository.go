package repositories

import (
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// StudentRepository holds students keyed by ssn.
type StudentRepository struct {
	store *keyedStore[*domain.Student]
}

// NewStudentRepository creates an empty student repository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		store: newKeyedStore[*domain.Student](apperrors.ErrStudentNotFound, apperrors.ErrStudentAlreadyExists),
	}
}

// Create registers a student. Duplicate ssn values return ErrStudentAlreadyExists.
func (r *StudentRepository) Create(student *domain.Student) error {
	return r.store.create(student.SSN(), student)
}

// GetBySSN retrieves a student by ssn
func (r *StudentRepository) GetBySSN(ssn string) (*domain.Student, error) {
	return r.store.get(ssn)
}

// GetAll returns every student in registration order
func (r *StudentRepository) GetAll() []*domain.Student {
	return r.store.all()
}

// Delete removes a student
func (r *StudentRepository) Delete(ssn string) error {
	return r.store.delete(ssn)
}

// Count returns the number of registered students
func (r *StudentRepository) Count() int {
	return r.store.count()
}
