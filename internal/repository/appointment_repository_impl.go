package repository

import (
	"patient-portal/internal/domain/entity"
	domainRepo "patient-portal/internal/domain/repository"
	"patient-portal/internal/infrastructure/store"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	store *store.Store
}

func NewAppointmentRepository(store *store.Store) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store}
}

// FindAll returns a snapshot copy in insertion order; callers sort and
// filter themselves.
func (r *appointmentRepository) FindAll() []entity.Appointment {
	return r.store.Appointments()
}

// Insert prepends so the freshest booking is first in insertion order.
func (r *appointmentRepository) Insert(appointment entity.Appointment) {
	r.store.PrependAppointment(appointment)
}

// Cancel flips only the status of the matching record, in place. Returns
// false when no appointment has the given id; the collection is untouched.
func (r *appointmentRepository) Cancel(id uuid.UUID) (*entity.Appointment, bool) {
	cancelled, ok := r.store.MutateAppointment(id, func(a *entity.Appointment) {
		a.Cancel()
	})
	if !ok {
		return nil, false
	}
	return &cancelled, true
}
