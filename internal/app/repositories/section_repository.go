package repositories

import (
	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// SectionRepository indexes every scheduled section by section number.
type SectionRepository struct {
	store *keyedStore[*domain.Section]
}

// NewSectionRepository creates an empty section repository
func NewSectionRepository() *SectionRepository {
	return &SectionRepository{
		store: newKeyedStore[*domain.Section](apperrors.ErrSectionNotFound, apperrors.ErrSectionAlreadyExists),
	}
}

// Create registers a section
func (r *SectionRepository) Create(section *domain.Section) error {
	return r.store.create(section.SectionNo(), section)
}

// GetBySectionNo retrieves a section by its number
func (r *SectionRepository) GetBySectionNo(sectionNo string) (*domain.Section, error) {
	return r.store.get(sectionNo)
}

// Exists reports whether sectionNo is registered
func (r *SectionRepository) Exists(sectionNo string) bool {
	return r.store.exists(sectionNo)
}

// GetAll returns every section in registration order
func (r *SectionRepository) GetAll() []*domain.Section {
	return r.store.all()
}

// GetAvailable returns the sections that still have a free seat
func (r *SectionRepository) GetAvailable() []*domain.Section {
	var out []*domain.Section
	for _, s := range r.store.all() {
		if s.ConfirmSeatAvailability() {
			out = append(out, s)
		}
	}
	return out
}

// Delete removes a section from the index
func (r *SectionRepository) Delete(sectionNo string) error {
	return r.store.delete(sectionNo)
}

// Count returns the number of registered sections
func (r *SectionRepository) Count() int {
	return r.store.count()
}
