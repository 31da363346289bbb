package converter

import (
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to a DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		DoctorID:     appointment.DoctorID,
		DoctorName:   appointment.DoctorName,
		Specialty:    appointment.Specialty,
		Date:         appointment.Date,
		Time:         appointment.Time,
		Reason:       appointment.Reason,
		Notes:        appointment.Notes,
		PatientName:  appointment.PatientName,
		PatientPhone: appointment.PatientPhone,
		PatientEmail: appointment.PatientEmail,
		Status:       string(appointment.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// CountAppointmentsByStatus tallies the per-status counts for the list view.
func CountAppointmentsByStatus(appointments []entity.Appointment) dto.AppointmentCounts {
	var counts dto.AppointmentCounts
	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusUpcoming:
			counts.Upcoming++
		case entity.AppointmentStatusCompleted:
			counts.Completed++
		case entity.AppointmentStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}
