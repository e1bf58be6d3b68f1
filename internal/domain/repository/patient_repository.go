package repository

import "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

type PatientRepository interface {
	Repository[entity.Patient]
}
