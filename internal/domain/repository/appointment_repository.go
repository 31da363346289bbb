package repository

import (
	"patient-portal/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	FindAll() []entity.Appointment
	Insert(appointment entity.Appointment)
	Cancel(id uuid.UUID) (*entity.Appointment, bool)
}
