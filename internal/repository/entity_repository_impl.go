package repository

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	domainRepo "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
)

func NewPatientRepository() domainRepo.PatientRepository {
	return &gormRepository[entity.Patient]{}
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &gormRepository[entity.Doctor]{}
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &gormRepository[entity.Appointment]{}
}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &gormRepository[entity.MedicalRecord]{}
}
