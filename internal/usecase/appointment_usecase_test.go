package usecase_test

import (
	"context"
	"io"
	"testing"

	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/infrastructure/store"
	"patient-portal/internal/repository"
	"patient-portal/internal/service"
	"patient-portal/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecase(t *testing.T) usecase.AppointmentUsecase {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	cache := service.NewAppointmentCache(client, log)
	repo := repository.NewAppointmentRepository(store.New())
	return usecase.NewAppointmentUsecase(log, repo, cache, 0)
}

func TestListReturnsSeedAppointments(t *testing.T) {
	uc := newAppointmentUsecase(t)

	appointments, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, appointments, 4)
	assert.Equal(t, store.SeedAppointmentCheckup, appointments[0].ID)
}

func TestBookForcesUpcomingAndIsReadableAfterWrite(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	booked, err := uc.Book(ctx, &dto.BookAppointmentRequest{
		DoctorID:     1,
		DoctorName:   "Dr. Sarah Johnson",
		Specialty:    "Cardiology",
		Date:         "2026-03-01",
		Time:         "10:00 AM",
		Reason:       "Annual Physical",
		PatientName:  "John Doe",
		PatientPhone: "+1 (555) 123-4567",
		PatientEmail: "john@example.com",
		Status:       "completed", // must be ignored
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booked.ID)
	assert.Equal(t, entity.AppointmentStatusUpcoming, booked.Status)

	appointments, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 5)
	assert.Equal(t, booked.ID, appointments[0].ID, "bookings prepend")
}

func TestBookInvalidatesCachedList(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	// Prime the cache.
	_, err := uc.List(ctx)
	require.NoError(t, err)

	_, err = uc.Book(ctx, &dto.BookAppointmentRequest{DoctorID: 2, DoctorName: "Dr. Michael Chen", Date: "2026-03-02", Time: "2:00 PM"})
	require.NoError(t, err)

	appointments, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, appointments, 5, "list after booking must not serve the stale cache entry")
}

func TestCancelFlipsOnlyTargetRecord(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	cancelled, err := uc.Cancel(ctx, store.SeedAppointmentCheckup)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)

	appointments, err := uc.List(ctx)
	require.NoError(t, err)
	for _, a := range appointments {
		if a.ID == store.SeedAppointmentCheckup {
			assert.Equal(t, entity.AppointmentStatusCancelled, a.Status)
		} else {
			assert.NotEqual(t, entity.AppointmentStatusCancelled, a.Status)
		}
	}
}

func TestCancelUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	uc := newAppointmentUsecase(t)
	ctx := context.Background()

	before, err := uc.List(ctx)
	require.NoError(t, err)

	_, err = uc.Cancel(ctx, uuid.New())
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)

	after, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBookHonorsContextCancellation(t *testing.T) {
	uc := newAppointmentUsecase(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Book(ctx, &dto.BookAppointmentRequest{DoctorID: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
