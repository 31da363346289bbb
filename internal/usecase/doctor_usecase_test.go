package usecase_test

import (
	"context"
	"io"
	"testing"

	"patient-portal/internal/domain/entity"
	"patient-portal/internal/infrastructure/store"
	"patient-portal/internal/repository"
	"patient-portal/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorUsecase(t *testing.T) usecase.DoctorUsecase {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return usecase.NewDoctorUsecase(log, repository.NewDoctorRepository(store.New()), 0)
}

func TestSearchWithoutFiltersReturnsAllDoctors(t *testing.T) {
	uc := newDoctorUsecase(t)

	doctors, err := uc.Search(context.Background(), entity.DoctorFilter{})
	require.NoError(t, err)
	assert.Len(t, doctors, 8)
}

func TestSearchComposesFiltersWithAND(t *testing.T) {
	uc := newDoctorUsecase(t)
	ctx := context.Background()

	cardiologists, err := uc.Search(ctx, entity.DoctorFilter{Specialty: "Cardiology"})
	require.NoError(t, err)
	for _, d := range cardiologists {
		assert.Equal(t, "Cardiology", d.Specialty)
	}
	require.NotEmpty(t, cardiologists)

	narrowed, err := uc.Search(ctx, entity.DoctorFilter{Specialty: "Cardiology", Location: "Chicago"})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(narrowed), len(cardiologists))
	for _, d := range narrowed {
		assert.Equal(t, "Cardiology", d.Specialty)
		assert.Contains(t, d.Location, "Chicago")
	}

	none, err := uc.Search(ctx, entity.DoctorFilter{Specialty: "Cardiology", Search: "zzz-no-such-doctor"})
	require.NoError(t, err)
	assert.Empty(t, none, "no match yields an empty result, not an error")
}

func TestSearchMatchesNameOrSpecialtyCaseInsensitively(t *testing.T) {
	uc := newDoctorUsecase(t)

	doctors, err := uc.Search(context.Background(), entity.DoctorFilter{Search: "SARAH"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
}

func TestGetByID(t *testing.T) {
	uc := newDoctorUsecase(t)
	ctx := context.Background()

	doctor, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", doctor.Name)

	_, err = uc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrDoctorNotFound)
}

func TestGetRecordsAndHealthTips(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	uc := usecase.NewMedicalRecordUsecase(log, repository.NewMedicalRecordRepository(store.New()), 0)
	ctx := context.Background()

	records, err := uc.GetRecords(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, records.LabResults)
	assert.NotEmpty(t, records.Prescriptions)
	assert.NotEmpty(t, records.Vitals)

	tips, err := uc.GetHealthTips(ctx)
	require.NoError(t, err)
	assert.Len(t, tips, 4)
}
