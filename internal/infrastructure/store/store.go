package store

import (
	"sync"

	"patient-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store holds the authoritative in-process record collections. It carries no
// domain logic of its own; the repository layer is its only client. The lock
// exists because HTTP handlers break the original single-writer assumption of
// a UI event loop.
type Store struct {
	mu sync.RWMutex

	doctors      []entity.Doctor
	appointments []entity.Appointment
	records      entity.MedicalRecordSet
	tips         []entity.HealthTip
	specialties  []string
	locations    []string
}

// New seeds a store with the fixed reference data set.
func New() *Store {
	s := &Store{
		doctors:      seedDoctors(),
		appointments: seedAppointments(),
		records:      seedMedicalRecords(),
		tips:         seedHealthTips(),
		specialties:  seedSpecialties(),
		locations:    seedLocations(),
	}
	logrus.Infof("Record store seeded: %d doctors, %d appointments", len(s.doctors), len(s.appointments))
	return s
}

// Doctors returns a snapshot copy of the doctor reference set.
func (s *Store) Doctors() []entity.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Doctor(nil), s.doctors...)
}

// Appointments returns a snapshot copy of the appointment collection in
// insertion order (freshest bookings first).
func (s *Store) Appointments() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Appointment(nil), s.appointments...)
}

// PrependAppointment inserts an appointment at the front of the collection.
func (s *Store) PrependAppointment(a entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append([]entity.Appointment{a}, s.appointments...)
}

// MutateAppointment applies fn to the appointment with the given id in place.
// Returns a copy of the mutated record, or false when the id is unknown.
func (s *Store) MutateAppointment(id uuid.UUID, fn func(a *entity.Appointment)) (entity.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			fn(&s.appointments[i])
			return s.appointments[i], true
		}
	}
	return entity.Appointment{}, false
}

// MedicalRecords returns a snapshot copy of the medical record set.
func (s *Store) MedicalRecords() entity.MedicalRecordSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.MedicalRecordSet{
		LabResults:    append([]entity.LabResult(nil), s.records.LabResults...),
		Vitals:        append([]entity.VitalsSnapshot(nil), s.records.Vitals...),
		Prescriptions: append([]entity.Prescription(nil), s.records.Prescriptions...),
	}
}

// HealthTips returns a snapshot copy of the health tip list.
func (s *Store) HealthTips() []entity.HealthTip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.HealthTip(nil), s.tips...)
}

// Specialties returns the specialty reference list.
func (s *Store) Specialties() []string {
	return append([]string(nil), s.specialties...)
}

// Locations returns the location reference list.
func (s *Store) Locations() []string {
	return append([]string(nil), s.locations...)
}
