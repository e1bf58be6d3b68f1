package repository

import "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

type MedicalRecordRepository interface {
	Repository[entity.MedicalRecord]
}
