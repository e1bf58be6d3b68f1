package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	domainRepo "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staleLookup answers every uniqueness question with yes, as a lookup would
// when a concurrent insert commits right after it ran.
type staleLookup struct {
	validator.Lookup
}

func (staleLookup) IsUnique(context.Context, string, string, any, uint) (bool, error) {
	return true, nil
}

func withStaleLookup(d *Deps) {
	d.Lookup = staleLookup{Lookup: d.Lookup}
}

func TestDuplicateCaughtByIndexIsValidationError(t *testing.T) {
	f := newFixture(t, withStaleLookup)
	ctx := context.Background()

	_, err := f.patients.CreatePatient(ctx, admin, patientInput(nil))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input map[string]any
		field string
	}{
		{"email", patientInput(map[string]any{"nhs_number": "9434765919"}), "email"},
		{"nhs number", patientInput(map[string]any{"email": "grace@example.com"}), "nhs_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.patients.CreatePatient(ctx, admin, tt.input)
			errs := requireFieldError(t, err, tt.field)
			assert.Equal(t, validator.Taken(tt.field), errs)
		})
	}

	assert.Equal(t, int64(1), countRows(t, f.db, &entity.Patient{}))
}

func TestDuplicateOnUpdateCaughtByIndex(t *testing.T) {
	f := newFixture(t, withStaleLookup)
	ctx := context.Background()

	_, err := f.doctors.CreateDoctor(ctx, admin, doctorInput(nil))
	require.NoError(t, err)
	other, err := f.doctors.CreateDoctor(ctx, admin, doctorInput(map[string]any{
		"email":          "crusher@example.com",
		"license_number": "GMC7654321",
	}))
	require.NoError(t, err)

	_, err = f.doctors.UpdateDoctor(ctx, admin, other.ID, map[string]any{"license_number": "GMC1234567"})
	errs := requireFieldError(t, err, "license_number")
	assert.Equal(t, []string{"The license number has already been taken."}, errs["license_number"])
}

func TestWriteConflictFallsBackToRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := &resource{Deps: f.deps, name: entity.ResourcePatients, notFound: ErrPatientNotFound}

	_, err := f.patients.CreatePatient(ctx, admin, patientInput(nil))
	require.NoError(t, err)

	unnamed := &domainRepo.ConstraintError{Kind: domainRepo.ErrDuplicate, Err: errors.New("duplicate key")}

	// No constraint name: the rules find the field once the winning row is visible.
	err = r.writeConflict(ctx, unnamed, dto.PatientCreateRules, patientInput(map[string]any{"nhs_number": "9434765919"}), 0, dto.PatientUniqueColumns)
	errs := requireFieldError(t, err, "email")
	assert.Len(t, errs, 1)

	// Nothing in the input conflicts: the original error stands.
	fresh := patientInput(map[string]any{"email": "grace@example.com", "nhs_number": "9434765919"})
	err = r.writeConflict(ctx, unnamed, dto.PatientCreateRules, fresh, 0, dto.PatientUniqueColumns)
	assert.Same(t, unnamed, err)
	assert.ErrorIs(t, err, domainRepo.ErrDuplicate)

	// A named constraint maps without re-running the rules.
	named := &domainRepo.ConstraintError{Kind: domainRepo.ErrDuplicate, Constraint: "idx_patients_nhs_number", Err: errors.New("duplicate key")}
	err = r.writeConflict(ctx, named, dto.PatientCreateRules, fresh, 0, dto.PatientUniqueColumns)
	assert.Equal(t, validator.Taken("nhs_number"), err)

	plain := errors.New("connection reset")
	assert.Same(t, plain, r.writeConflict(ctx, plain, dto.PatientCreateRules, fresh, 0, dto.PatientUniqueColumns))
}
