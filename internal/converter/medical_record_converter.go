package converter

import (
	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
)

// MedicalRecordSetToResponse converts the record aggregate to its DTO
func MedicalRecordSetToResponse(set entity.MedicalRecordSet) *dto.MedicalRecordsResponse {
	return &dto.MedicalRecordsResponse{
		LabResults:    set.LabResults,
		Vitals:        set.Vitals,
		Prescriptions: set.Prescriptions,
	}
}
