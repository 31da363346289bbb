package usecase

import (
	"context"

	"patient-portal/internal/domain/entity"
	"patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type MedicalRecordUsecase interface {
	GetRecords(ctx context.Context) (entity.MedicalRecordSet, error)
	GetHealthTips(ctx context.Context) ([]entity.HealthTip, error)
}

type medicalRecordUsecase struct {
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
	delay      delayFunc
}

func NewMedicalRecordUsecase(log *logrus.Logger, recordRepo repository.MedicalRecordRepository, latencyScale float64) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:        log,
		recordRepo: recordRepo,
		delay:      newDelayFunc(latencyScale),
	}
}

func (u *medicalRecordUsecase) GetRecords(ctx context.Context) (entity.MedicalRecordSet, error) {
	if err := u.delay(ctx, recordsDelay); err != nil {
		return entity.MedicalRecordSet{}, err
	}
	return u.recordRepo.RecordSet(), nil
}

// GetHealthTips has no artificial delay; the tip list is served instantly.
func (u *medicalRecordUsecase) GetHealthTips(ctx context.Context) ([]entity.HealthTip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return u.recordRepo.HealthTips(), nil
}
