package repository

import (
	"patient-portal/internal/domain/entity"
	domainRepo "patient-portal/internal/domain/repository"
	"patient-portal/internal/infrastructure/store"
)

type doctorRepository struct {
	store *store.Store
}

func NewDoctorRepository(store *store.Store) domainRepo.DoctorRepository {
	return &doctorRepository{store: store}
}

// FindAll returns a fresh slice of the doctors satisfying every set filter
// predicate. The store is never mutated.
func (r *doctorRepository) FindAll(filter entity.DoctorFilter) []entity.Doctor {
	doctors := r.store.Doctors()
	filtered := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if filter.Matches(d) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func (r *doctorRepository) FindByID(id int) (*entity.Doctor, bool) {
	for _, d := range r.store.Doctors() {
		if d.ID == id {
			doctor := d
			return &doctor, true
		}
	}
	return nil, false
}
