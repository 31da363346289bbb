package entity

import (
	"sort"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked visit. The only supported transition is
// upcoming -> cancelled; completed exists solely in seed data.
type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	DoctorID     int               `json:"doctor_id"`
	DoctorName   string            `json:"doctor_name"`
	Specialty    string            `json:"specialty"`
	Date         string            `json:"date"` // Format: YYYY-MM-DD
	Time         string            `json:"time"`
	Reason       string            `json:"reason"`
	Notes        string            `json:"notes,omitempty"`
	PatientName  string            `json:"patient_name,omitempty"`
	PatientPhone string            `json:"patient_phone,omitempty"`
	PatientEmail string            `json:"patient_email,omitempty"`
	Status       AppointmentStatus `json:"status"`
}

// IsUpcoming checks if the appointment is still upcoming
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusUpcoming
}

// IsCancelled checks if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel marks the appointment cancelled. Terminal: nothing reverses it.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// FilterAppointmentsByStatus returns the appointments with the given status,
// preserving order. An empty status returns everything.
func FilterAppointmentsByStatus(appointments []Appointment, status AppointmentStatus) []Appointment {
	if status == "" {
		return appointments
	}
	filtered := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// SortAppointmentsByDateDesc orders appointments newest-date first, in place.
// Dates are YYYY-MM-DD so string comparison is chronological. The sort is
// stable: same-day appointments keep insertion order.
func SortAppointmentsByDateDesc(appointments []Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Date > appointments[j].Date
	})
}
