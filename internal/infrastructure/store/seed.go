package store

import (
	"patient-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// Seed appointment ids are fixed so restarts and tests address the same
// records; freshly booked appointments get random ids instead.
var (
	SeedAppointmentCheckup  = uuid.MustParse("5a6f1a52-0001-4c5e-9f4e-2d1a3b4c5d01")
	SeedAppointmentFollowUp = uuid.MustParse("5a6f1a52-0002-4c5e-9f4e-2d1a3b4c5d02")
	SeedAppointmentSkin     = uuid.MustParse("5a6f1a52-0003-4c5e-9f4e-2d1a3b4c5d03")
	SeedAppointmentHeadache = uuid.MustParse("5a6f1a52-0004-4c5e-9f4e-2d1a3b4c5d04")
)

func seedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Cardiology", Location: "New York", Rating: 4.8, YearsExperience: 15, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-05", "2026-02-07", "2026-02-10"}},
		{ID: 2, Name: "Dr. Michael Chen", Specialty: "Dermatology", Location: "Los Angeles", Rating: 4.9, YearsExperience: 12, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-06", "2026-02-08", "2026-02-11"}},
		{ID: 3, Name: "Dr. Emily Williams", Specialty: "Pediatrics", Location: "Chicago", Rating: 4.7, YearsExperience: 10, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-05", "2026-02-09", "2026-02-12"}},
		{ID: 4, Name: "Dr. James Davis", Specialty: "Orthopedics", Location: "Houston", Rating: 4.6, YearsExperience: 18, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-07", "2026-02-10", "2026-02-13"}},
		{ID: 5, Name: "Dr. Lisa Anderson", Specialty: "Neurology", Location: "Phoenix", Rating: 4.9, YearsExperience: 14, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-06", "2026-02-11", "2026-02-14"}},
		{ID: 6, Name: "Dr. Robert Martinez", Specialty: "Cardiology", Location: "Philadelphia", Rating: 4.8, YearsExperience: 20, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-08", "2026-02-12", "2026-02-15"}},
		{ID: 7, Name: "Dr. Jessica Taylor", Specialty: "General Practice", Location: "San Antonio", Rating: 4.7, YearsExperience: 8, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-05", "2026-02-08", "2026-02-11"}},
		{ID: 8, Name: "Dr. David Brown", Specialty: "Psychiatry", Location: "San Diego", Rating: 4.8, YearsExperience: 16, Image: "/doctor.jpg", AvailableDates: []string{"2026-02-06", "2026-02-09", "2026-02-12"}},
	}
}

func seedAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: SeedAppointmentCheckup, DoctorID: 1, DoctorName: "Dr. Sarah Johnson", Specialty: "Cardiology", Date: "2026-02-10", Time: "10:00 AM", Status: entity.AppointmentStatusUpcoming, Reason: "Annual Checkup"},
		{ID: SeedAppointmentFollowUp, DoctorID: 3, DoctorName: "Dr. Emily Williams", Specialty: "Pediatrics", Date: "2026-02-15", Time: "2:00 PM", Status: entity.AppointmentStatusUpcoming, Reason: "Follow-up"},
		{ID: SeedAppointmentSkin, DoctorID: 2, DoctorName: "Dr. Michael Chen", Specialty: "Dermatology", Date: "2026-01-15", Time: "11:00 AM", Status: entity.AppointmentStatusCompleted, Reason: "Skin Consultation"},
		{ID: SeedAppointmentHeadache, DoctorID: 5, DoctorName: "Dr. Lisa Anderson", Specialty: "Neurology", Date: "2025-12-20", Time: "9:00 AM", Status: entity.AppointmentStatusCompleted, Reason: "Headache Treatment"},
	}
}

func seedMedicalRecords() entity.MedicalRecordSet {
	return entity.MedicalRecordSet{
		LabResults: []entity.LabResult{
			{ID: 1, Test: "Blood Glucose", Value: "95", Unit: "mg/dL", Date: "2026-01-20", Status: "Normal", Range: "70-100"},
			{ID: 2, Test: "Cholesterol", Value: "180", Unit: "mg/dL", Date: "2026-01-20", Status: "Normal", Range: "<200"},
			{ID: 3, Test: "Blood Pressure", Value: "120/80", Unit: "mmHg", Date: "2026-01-25", Status: "Normal", Range: "<120/80"},
			{ID: 4, Test: "Hemoglobin", Value: "14.5", Unit: "g/dL", Date: "2026-01-20", Status: "Normal", Range: "12-16"},
		},
		Vitals: []entity.VitalsSnapshot{
			{Date: "2026-01-25", Weight: 70, Height: 170, BMI: 24.2, HeartRate: 72, Temperature: 36.8},
			{Date: "2026-01-15", Weight: 71, Height: 170, BMI: 24.6, HeartRate: 75, Temperature: 36.6},
			{Date: "2026-01-05", Weight: 71.5, Height: 170, BMI: 24.7, HeartRate: 73, Temperature: 36.7},
			{Date: "2025-12-20", Weight: 72, Height: 170, BMI: 24.9, HeartRate: 74, Temperature: 36.9},
		},
		Prescriptions: []entity.Prescription{
			{ID: 1, Medication: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", PrescribedBy: "Dr. Sarah Johnson", Date: "2026-01-15", Status: "Active"},
			{ID: 2, Medication: "Metformin", Dosage: "500mg", Frequency: "Twice daily", PrescribedBy: "Dr. Sarah Johnson", Date: "2026-01-15", Status: "Active"},
		},
	}
}

func seedHealthTips() []entity.HealthTip {
	return []entity.HealthTip{
		{ID: 1, Title: "Stay Hydrated", Content: "Drink at least 8 glasses of water daily to maintain optimal health.", Icon: "💧"},
		{ID: 2, Title: "Regular Exercise", Content: "Aim for 30 minutes of moderate exercise at least 5 days a week.", Icon: "🏃"},
		{ID: 3, Title: "Balanced Diet", Content: "Include fruits, vegetables, whole grains, and lean proteins in your meals.", Icon: "🥗"},
		{ID: 4, Title: "Quality Sleep", Content: "Get 7-9 hours of sleep each night for better physical and mental health.", Icon: "😴"},
	}
}

func seedSpecialties() []string {
	return []string{"Cardiology", "Dermatology", "Pediatrics", "Orthopedics", "Neurology", "General Practice", "Psychiatry"}
}

func seedLocations() []string {
	return []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego"}
}
