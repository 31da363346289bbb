package dto

import "github.com/google/uuid"

// Request DTOs

type StartBookingRequest struct {
	DoctorID int `json:"doctor_id"`
}

// BookingStepRequest carries field edits for the wizard. Empty fields leave
// the draft value unchanged, matching form inputs that only ever set values.
type BookingStepRequest struct {
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Notes        string `json:"notes,omitempty"`
	PatientName  string `json:"patient_name,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
	PatientEmail string `json:"patient_email,omitempty"`
}

// Response DTOs

type BookingDraftResponse struct {
	ID           uuid.UUID         `json:"id"`
	Step         int               `json:"step"`
	Doctor       DoctorResponse    `json:"doctor"`
	Date         string            `json:"date,omitempty"`
	Time         string            `json:"time,omitempty"`
	Reason       string            `json:"reason,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	PatientName  string            `json:"patient_name,omitempty"`
	PatientPhone string            `json:"patient_phone,omitempty"`
	PatientEmail string            `json:"patient_email,omitempty"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	SubmitError  string            `json:"submit_error,omitempty"`
}

type BookingSlotsResponse struct {
	TimeSlots []string `json:"time_slots"`
	Reasons   []string `json:"reasons"`
}

type BookingResultResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Message     string              `json:"message"`
}
