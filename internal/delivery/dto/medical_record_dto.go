package dto

import "patient-portal/internal/domain/entity"

// The medical record set is read-only reference data; the entity shapes are
// already wire-friendly, so the DTO embeds them directly.
type MedicalRecordsResponse struct {
	LabResults    []entity.LabResult      `json:"lab_results"`
	Vitals        []entity.VitalsSnapshot `json:"vitals"`
	Prescriptions []entity.Prescription   `json:"prescriptions"`
}

type HealthTipsResponse struct {
	Tips []entity.HealthTip `json:"tips"`
}
