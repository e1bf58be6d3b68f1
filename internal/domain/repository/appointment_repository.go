package repository

import "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

type AppointmentRepository interface {
	Repository[entity.Appointment]
}
