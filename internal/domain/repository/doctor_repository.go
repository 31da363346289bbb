package repository

import "patient-portal/internal/domain/entity"

type DoctorRepository interface {
	FindAll(filter entity.DoctorFilter) []entity.Doctor
	FindByID(id int) (*entity.Doctor, bool)
}
