package repositories

import (
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// ProfessorRepository holds professors keyed by ssn.
type ProfessorRepository struct {
	store *keyedStore[*domain.Professor]
}

// NewProfessorRepository creates an empty professor repository
func NewProfessorRepository() *ProfessorRepository {
	return &ProfessorRepository{
		store: newKeyedStore[*domain.Professor](apperrors.ErrProfessorNotFound, apperrors.ErrProfessorAlreadyExists),
	}
}

// Create registers a professor
func (r *ProfessorRepository) Create(professor *domain.Professor) error {
	return r.store.create(professor.SSN(), professor)
}

// GetBySSN retrieves a professor by ssn
func (r *ProfessorRepository) GetBySSN(ssn string) (*domain.Professor, error) {
	return r.store.get(ssn)
}

// GetAll returns every professor in registration order
func (r *ProfessorRepository) GetAll() []*domain.Professor {
	return r.store.all()
}

// Count returns the number of registered professors
func (r *ProfessorRepository) Count() int {
	return r.store.count()
}
