package usecase

import (
	"context"
	"errors"
	"io"
	"maps"
	"path/filepath"
	"testing"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/infrastructure/database"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db             *gorm.DB
	deps           Deps
	patients       PatientUsecase
	doctors        DoctorUsecase
	appointments   AppointmentUsecase
	medicalRecords MedicalRecordUsecase
	auditLogs      AuditLogUsecase
}

func newFixture(t *testing.T, configure ...func(*Deps)) *fixture {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "usecase.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	gate := service.NewGate(log, service.DefaultRolePolicy())

	deps := Deps{
		DB:           db,
		Log:          log,
		Validator:    validator.NewValidator(),
		Lookup:       NewRuleLookup(db, patientRepo, doctorRepo, appointmentRepo, medicalRecordRepo),
		Gate:         gate,
		AuditService: service.NewAuditService(log, auditLogRepo),
	}
	for _, fn := range configure {
		fn(&deps)
	}

	return &fixture{
		db:             db,
		deps:           deps,
		patients:       NewPatientUsecase(deps, patientRepo),
		doctors:        NewDoctorUsecase(deps, doctorRepo),
		appointments:   NewAppointmentUsecase(deps, appointmentRepo),
		medicalRecords: NewMedicalRecordUsecase(deps, medicalRecordRepo),
		auditLogs:      NewAuditLogUsecase(db, log, gate, auditLogRepo),
	}
}

func actorWithRole(roleID int) *entity.Actor {
	return &entity.Actor{UserID: uuid.New(), Email: "staff@example.com", RoleID: roleID}
}

var (
	admin        = actorWithRole(entity.RoleIDAdmin)
	doctorActor  = actorWithRole(entity.RoleIDDoctor)
	receptionist = actorWithRole(entity.RoleIDReceptionist)
	patientActor = actorWithRole(entity.RoleIDPatient)
)

func with(base map[string]any, overrides map[string]any) map[string]any {
	input := maps.Clone(base)
	for k, v := range overrides {
		if v == nil {
			delete(input, k)
			continue
		}
		input[k] = v
	}
	return input
}

func patientInput(overrides map[string]any) map[string]any {
	return with(map[string]any{
		"first_name":      "Ada",
		"last_name":       "Lovelace",
		"email":           "ada@example.com",
		"phone":           "07700 900123",
		"date_of_birth":   "1990-05-01",
		"gender":          "female",
		"address":         "12 St Thomas Street, London",
		"nhs_number":      "4505577104",
		"medical_history": "Asthma",
		"allergies":       "Penicillin",
	}, overrides)
}

func doctorInput(overrides map[string]any) map[string]any {
	return with(map[string]any{
		"first_name":     "John",
		"last_name":      "Watson",
		"email":          "watson@example.com",
		"phone":          "+44 7700 900456",
		"specialization": "General Practice",
		"license_number": "GMC1234567",
		"qualifications": "MBBS",
	}, overrides)
}

func futureDate() string {
	return time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
}

func pastDate() string {
	return time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339)
}

func requireFieldError(t *testing.T, err error, field string) validator.Errors {
	t.Helper()
	var errs validator.Errors
	require.True(t, errors.As(err, &errs), "expected validation errors, got %v", err)
	require.Contains(t, errs, field)
	return errs
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func seedPatientAndDoctor(t *testing.T, f *fixture) (uint, uint) {
	t.Helper()
	ctx := context.Background()

	patient, err := f.patients.CreatePatient(ctx, admin, patientInput(nil))
	require.NoError(t, err)
	doctor, err := f.doctors.CreateDoctor(ctx, admin, doctorInput(nil))
	require.NoError(t, err)
	return patient.ID, doctor.ID
}
