package converter

import (
	"patient-portal/internal/booking"
	"patient-portal/internal/delivery/dto"
)

// BookingDraftToResponse converts a wizard draft to its DTO
func BookingDraftToResponse(draft *booking.Draft) *dto.BookingDraftResponse {
	if draft == nil {
		return nil
	}
	return &dto.BookingDraftResponse{
		ID:           draft.ID,
		Step:         int(draft.Step),
		Doctor:       *DoctorToResponse(&draft.Doctor),
		Date:         draft.Date,
		Time:         draft.Time,
		Reason:       draft.Reason,
		Notes:        draft.Notes,
		PatientName:  draft.PatientName,
		PatientPhone: draft.PatientPhone,
		PatientEmail: draft.PatientEmail,
		FieldErrors:  draft.FieldErrors,
		SubmitError:  draft.SubmitError,
	}
}
