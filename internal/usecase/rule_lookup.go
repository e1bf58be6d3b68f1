package usecase

import (
	"context"
	"fmt"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"gorm.io/gorm"
)

type activeChecker interface {
	ExistsActive(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	IsUnique(ctx context.Context, db *gorm.DB, column string, value any, ignoreID uint) (bool, error)
}

type ruleLookup struct {
	db     *gorm.DB
	tables map[string]activeChecker
}

// NewRuleLookup answers the Exists and Unique rules from the entity stores.
func NewRuleLookup(
	db *gorm.DB,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
) validator.Lookup {
	return &ruleLookup{
		db: db,
		tables: map[string]activeChecker{
			string(entity.ResourcePatients):       patientRepo,
			string(entity.ResourceDoctors):        doctorRepo,
			string(entity.ResourceAppointments):   appointmentRepo,
			string(entity.ResourceMedicalRecords): medicalRecordRepo,
		},
	}
}

func (l *ruleLookup) table(name string) (activeChecker, error) {
	checker, ok := l.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", name)
	}
	return checker, nil
}

func (l *ruleLookup) Exists(ctx context.Context, table string, id uint) (bool, error) {
	checker, err := l.table(table)
	if err != nil {
		return false, err
	}
	return checker.ExistsActive(ctx, l.db, id)
}

func (l *ruleLookup) IsUnique(ctx context.Context, table, column string, value any, ignoreID uint) (bool, error) {
	checker, err := l.table(table)
	if err != nil {
		return false, err
	}
	return checker.IsUnique(ctx, l.db, column, value, ignoreID)
}
