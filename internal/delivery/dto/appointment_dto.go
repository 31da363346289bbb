package dto

import "github.com/google/uuid"

// BookAppointmentRequest is the draft payload submitted to the booking
// operation. Any status supplied here is ignored; booked appointments are
// always created upcoming.
type BookAppointmentRequest struct {
	DoctorID     int    `json:"doctor_id" validate:"required,min=1"`
	DoctorName   string `json:"doctor_name" validate:"required"`
	Specialty    string `json:"specialty" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
	Notes        string `json:"notes" validate:"omitempty"`
	PatientName  string `json:"patient_name" validate:"required"`
	PatientPhone string `json:"patient_phone" validate:"required"`
	PatientEmail string `json:"patient_email" validate:"required,email"`
	Status       string `json:"status" validate:"omitempty"`
}

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	DoctorID     int       `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	Specialty    string    `json:"specialty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes,omitempty"`
	PatientName  string    `json:"patient_name,omitempty"`
	PatientPhone string    `json:"patient_phone,omitempty"`
	PatientEmail string    `json:"patient_email,omitempty"`
	Status       string    `json:"status"`
}

// AppointmentCounts are the per-status tab counts the appointments view shows.
type AppointmentCounts struct {
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	Counts       AppointmentCounts     `json:"counts"`
	// Message is the one-shot post-booking banner; present at most once.
	Message string `json:"message,omitempty"`
}
