package repository

import "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

type DoctorRepository interface {
	Repository[entity.Doctor]
}
