package repository

import "patient-portal/internal/domain/entity"

type MedicalRecordRepository interface {
	RecordSet() entity.MedicalRecordSet
	HealthTips() []entity.HealthTip
}
