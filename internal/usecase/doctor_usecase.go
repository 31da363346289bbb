package usecase

import (
	"context"
	"errors"

	"patient-portal/internal/domain/entity"
	"patient-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Search(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error)
	GetByID(ctx context.Context, id int) (*entity.Doctor, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	delay      delayFunc
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, latencyScale float64) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		delay:      newDelayFunc(latencyScale),
	}
}

// Search filters the doctor reference set. Filters compose with AND; empty
// fields impose no constraint. No artificial delay on this read.
func (u *doctorUsecase) Search(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return u.doctorRepo.FindAll(filter), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int) (*entity.Doctor, error) {
	if err := u.delay(ctx, doctorDelay); err != nil {
		return nil, err
	}
	doctor, ok := u.doctorRepo.FindByID(id)
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
