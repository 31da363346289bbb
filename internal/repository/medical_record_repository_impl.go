package repository

import (
	"patient-portal/internal/domain/entity"
	domainRepo "patient-portal/internal/domain/repository"
	"patient-portal/internal/infrastructure/store"
)

type medicalRecordRepository struct {
	store *store.Store
}

func NewMedicalRecordRepository(store *store.Store) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{store: store}
}

func (r *medicalRecordRepository) RecordSet() entity.MedicalRecordSet {
	return r.store.MedicalRecords()
}

func (r *medicalRecordRepository) HealthTips() []entity.HealthTip {
	return r.store.HealthTips()
}
