package validator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	rows  map[string]map[uint]bool
	taken map[string]uint
	err   error
}

func (f *fakeLookup) Exists(_ context.Context, table string, id uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.rows[table][id], nil
}

func (f *fakeLookup) IsUnique(_ context.Context, table, column string, value any, ignoreID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	owner, ok := f.taken[table+"."+column+"="+value.(string)]
	return !ok || owner == ignoreID, nil
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestValidator() *CustomValidator {
	return NewValidator().WithClock(func() time.Time { return fixedNow })
}

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected Errors, got %v", err)
	return errs
}

func TestUKMobileFormats(t *testing.T) {
	rules := RuleSet{On("phone", Required(), String(), Regex("uk_mobile"))}
	v := newTestValidator()

	tests := []struct {
		phone string
		valid bool
	}{
		{"07700 900123", true},
		{"07700900123", true},
		{"+44 7700 900123", true},
		{"+447700900123", true},
		{"(07700) 900123", true},
		{"07700 900 123", true},
		{"01632 960123", false},
		{"7700 900123", false},
		{"+44 1632 960123", false},
		{"07700-900123", false},
		{"0770090012", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			_, err := v.ValidateFields(context.Background(), rules, map[string]any{"phone": tt.phone}, Options{})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Contains(t, errs, "phone")
		})
	}
}

func TestNHSNumber(t *testing.T) {
	rules := RuleSet{On("nhs_number", Required(), String(), Regex("nhs_number").WithMessage("The NHS number must be exactly 10 digits."))}
	v := newTestValidator()

	_, err := v.ValidateFields(context.Background(), rules, map[string]any{"nhs_number": "4505577104"}, Options{})
	assert.NoError(t, err)

	for _, bad := range []string{"450 557 7104", "450557710", "45055771045", "45055771OX"} {
		_, err := v.ValidateFields(context.Background(), rules, map[string]any{"nhs_number": bad}, Options{})
		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"The NHS number must be exactly 10 digits."}, errs["nhs_number"], bad)
	}
}

func TestRequiredAndSometimes(t *testing.T) {
	v := newTestValidator()
	create := RuleSet{On("first_name", Required(), String(), Max(255))}
	update := RuleSet{On("first_name", Sometimes(), Required(), String(), Max(255))}

	_, err := v.ValidateFields(context.Background(), create, map[string]any{}, Options{})
	errs := fieldErrors(t, err)
	assert.Equal(t, []string{"The first name field is required."}, errs["first_name"])

	out, err := v.ValidateFields(context.Background(), update, map[string]any{}, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "first_name")

	_, err = v.ValidateFields(context.Background(), update, map[string]any{"first_name": "  "}, Options{})
	errs = fieldErrors(t, err)
	assert.Contains(t, errs, "first_name")
}

func TestNullableAndNormalization(t *testing.T) {
	v := newTestValidator()
	rules := RuleSet{
		On("first_name", Required(), String()),
		On("address", Nullable(), String()),
	}

	out, err := v.ValidateFields(context.Background(), rules, map[string]any{
		"first_name": "  Ada ",
		"address":    "",
		"unknown":    "dropped",
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Ada", out["first_name"])
	assert.Contains(t, out, "address")
	assert.Nil(t, out["address"])
	assert.NotContains(t, out, "unknown")
}

func TestOnlyFirstFailurePerField(t *testing.T) {
	v := newTestValidator()
	rules := RuleSet{On("email", Required(), String(), Email(), Max(5))}

	_, err := v.ValidateFields(context.Background(), rules, map[string]any{"email": "not-an-email"}, Options{})
	errs := fieldErrors(t, err)
	assert.Len(t, errs["email"], 1)
	assert.Equal(t, "The email field must be a valid email address.", errs["email"][0])
}

func TestIntegerBetween(t *testing.T) {
	v := newTestValidator()
	rules := RuleSet{On("duration_minutes", Sometimes(), Integer(), Between(15, 180))}

	tests := []struct {
		name  string
		input any
		want  any
		valid bool
	}{
		{"float from json", float64(30), 30, true},
		{"numeric string", "45", 45, true},
		{"lower bound", 15, 15, true},
		{"upper bound", 180, 180, true},
		{"below", 14, nil, false},
		{"above", 181, nil, false},
		{"fraction", 30.5, nil, false},
		{"text", "half an hour", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := v.ValidateFields(context.Background(), rules, map[string]any{"duration_minutes": tt.input}, Options{})
			if !tt.valid {
				assert.Contains(t, fieldErrors(t, err), "duration_minutes")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out["duration_minutes"])
		})
	}
}

func TestDateComparisons(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	past := RuleSet{On("date_of_birth", Required(), Date(), Before(Today))}
	_, err := v.ValidateFields(ctx, past, map[string]any{"date_of_birth": "1990-05-01"}, Options{})
	assert.NoError(t, err)
	_, err = v.ValidateFields(ctx, past, map[string]any{"date_of_birth": "2026-03-10"}, Options{})
	assert.Contains(t, fieldErrors(t, err), "date_of_birth")

	future := RuleSet{On("appointment_date", Required(), Date(), After(Now))}
	out, err := v.ValidateFields(ctx, future, map[string]any{"appointment_date": "2026-03-10T12:30:00Z"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC), out["appointment_date"])
	_, err = v.ValidateFields(ctx, future, map[string]any{"appointment_date": "2026-03-10 11:00:00"}, Options{})
	assert.Contains(t, fieldErrors(t, err), "appointment_date")

	notFuture := RuleSet{On("visit_date", Sometimes(), Required(), Date(), BeforeOrEqual(Today))}
	_, err = v.ValidateFields(ctx, notFuture, map[string]any{"visit_date": "2026-03-10"}, Options{})
	assert.NoError(t, err)
	_, err = v.ValidateFields(ctx, notFuture, map[string]any{"visit_date": "2026-03-11"}, Options{})
	assert.Contains(t, fieldErrors(t, err), "visit_date")

	_, err = v.ValidateFields(ctx, past, map[string]any{"date_of_birth": "10/03/1990"}, Options{})
	assert.Equal(t, []string{"The date of birth field must be a valid date."}, fieldErrors(t, err)["date_of_birth"])
}

func TestInRule(t *testing.T) {
	v := newTestValidator()
	rules := RuleSet{On("gender", Required(), In("male", "female", "other"))}

	_, err := v.ValidateFields(context.Background(), rules, map[string]any{"gender": "other"}, Options{})
	assert.NoError(t, err)

	_, err = v.ValidateFields(context.Background(), rules, map[string]any{"gender": "unknown"}, Options{})
	assert.Equal(t, []string{"The selected gender is invalid."}, fieldErrors(t, err)["gender"])
}

func TestExistsAndUnique(t *testing.T) {
	v := newTestValidator()
	lookup := &fakeLookup{
		rows:  map[string]map[uint]bool{"patients": {1: true}},
		taken: map[string]uint{"patients.email=ada@example.com": 7},
	}

	exists := RuleSet{On("patient_id", Required(), Exists("patients"))}
	out, err := v.ValidateFields(context.Background(), exists, map[string]any{"patient_id": float64(1)}, Options{Lookup: lookup})
	require.NoError(t, err)
	assert.Equal(t, uint(1), out["patient_id"])

	_, err = v.ValidateFields(context.Background(), exists, map[string]any{"patient_id": float64(2)}, Options{Lookup: lookup})
	assert.Equal(t, []string{"The selected patient id is invalid."}, fieldErrors(t, err)["patient_id"])

	unique := RuleSet{On("email", Required(), Email(), Unique("patients", "email"))}
	_, err = v.ValidateFields(context.Background(), unique, map[string]any{"email": "ada@example.com"}, Options{Lookup: lookup})
	assert.Equal(t, []string{"The email has already been taken."}, fieldErrors(t, err)["email"])

	_, err = v.ValidateFields(context.Background(), unique, map[string]any{"email": "ada@example.com"}, Options{Lookup: lookup, IgnoreID: 7})
	assert.NoError(t, err)
}

func TestLookupFailureIsNotAValidationError(t *testing.T) {
	v := newTestValidator()
	boom := errors.New("connection refused")
	rules := RuleSet{On("doctor_id", Required(), Exists("doctors"))}

	_, err := v.ValidateFields(context.Background(), rules, map[string]any{"doctor_id": 3}, Options{Lookup: &fakeLookup{err: boom}})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var errs Errors
	assert.False(t, errors.As(err, &errs))
}
