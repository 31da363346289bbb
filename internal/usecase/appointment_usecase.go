package usecase

import (
	"context"
	"errors"

	"patient-portal/internal/delivery/dto"
	"patient-portal/internal/domain/entity"
	"patient-portal/internal/domain/repository"
	"patient-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentUsecase interface {
	List(ctx context.Context) ([]entity.Appointment, error)
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*entity.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	cache           *service.AppointmentCache
	delay           delayFunc
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	cache *service.AppointmentCache,
	latencyScale float64,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		delay:           newDelayFunc(latencyScale),
	}
}

// List returns a snapshot copy of all appointments in insertion order;
// callers sort and filter themselves. Cache hits skip the simulated latency
// the way a client-side request cache skips the network.
func (u *appointmentUsecase) List(ctx context.Context) ([]entity.Appointment, error) {
	if cached, ok := u.cache.Get(ctx); ok {
		return cached, nil
	}

	if err := u.delay(ctx, appointmentsDelay); err != nil {
		return nil, err
	}

	appointments := u.appointmentRepo.FindAll()
	u.cache.Set(ctx, appointments)
	return appointments, nil
}

// Book constructs the appointment with a generated id, forces status to
// upcoming regardless of the request, and prepends it to the collection.
// No double-booking check: slot choice and availability are independent axes.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*entity.Appointment, error) {
	if err := u.delay(ctx, bookDelay); err != nil {
		return nil, err
	}

	appointment := entity.Appointment{
		ID:           uuid.New(),
		DoctorID:     req.DoctorID,
		DoctorName:   req.DoctorName,
		Specialty:    req.Specialty,
		Date:         req.Date,
		Time:         req.Time,
		Reason:       req.Reason,
		Notes:        req.Notes,
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		PatientEmail: req.PatientEmail,
		Status:       entity.AppointmentStatusUpcoming,
	}

	// Store is mutated before completion is signaled, so a read issued after
	// this returns observes the new record.
	u.appointmentRepo.Insert(appointment)
	u.cache.Invalidate(ctx)

	u.log.Infof("Appointment booked: id=%s doctor=%d date=%s %s", appointment.ID, appointment.DoctorID, appointment.Date, appointment.Time)
	return &appointment, nil
}

// Cancel flips the matching record's status to cancelled in place and
// returns it. Unknown ids fail with ErrAppointmentNotFound and leave the
// collection unchanged.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	if err := u.delay(ctx, cancelDelay); err != nil {
		return nil, err
	}

	cancelled, ok := u.appointmentRepo.Cancel(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	u.cache.Invalidate(ctx)

	u.log.Infof("Appointment cancelled: id=%s", id)
	return cancelled, nil
}
