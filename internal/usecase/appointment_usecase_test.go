package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	appointment, err := f.appointments.CreateAppointment(ctx, receptionist, map[string]any{
		"patient_id":       json.Number("1"),
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
		"reason":           "Annual review",
	})
	require.NoError(t, err)

	assert.Equal(t, patientID, appointment.PatientID)
	assert.Equal(t, entity.DefaultAppointmentDuration, appointment.DurationMinutes)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), appointment.Status)
	require.NotNil(t, appointment.Reason)
	assert.Nil(t, appointment.Notes)

	assert.True(t, appointment.Patient.Loaded)
	require.NotNil(t, appointment.Patient.Value)
	assert.Equal(t, "4505577104", appointment.Patient.Value.NHSNumber)
	assert.True(t, appointment.Doctor.Loaded)
	assert.False(t, appointment.MedicalRecord.Loaded)

	shown, err := f.appointments.GetAppointment(ctx, doctorActor, appointment.ID)
	require.NoError(t, err)
	assert.True(t, shown.MedicalRecord.Loaded)
	assert.Nil(t, shown.MedicalRecord.Value)
}

func TestAppointmentDateInPast(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	past := pastDate()
	_, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": past,
	})
	errs := requireFieldError(t, err, "appointment_date")
	assert.Equal(t, []string{"The appointment date must be in the future."}, errs["appointment_date"])
	assert.Zero(t, countRows(t, f.db, &entity.Appointment{}))

	appointment, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	})
	require.NoError(t, err)

	updated, err := f.appointments.UpdateAppointment(ctx, admin, appointment.ID, map[string]any{
		"appointment_date": past,
		"status":           "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, past[:19], updated.AppointmentDate[:19])
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	base := map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	}

	tests := []struct {
		field     string
		overrides map[string]any
		message   string
	}{
		{"patient_id", map[string]any{"patient_id": 999}, "The selected patient id is invalid."},
		{"doctor_id", map[string]any{"doctor_id": "abc"}, "The selected doctor id is invalid."},
		{"appointment_date", map[string]any{"appointment_date": "next tuesday"}, "The appointment date field must be a valid date."},
		{"duration_minutes", map[string]any{"duration_minutes": 10}, "The duration minutes field must be at least 15."},
		{"duration_minutes", map[string]any{"duration_minutes": 240}, "The duration minutes field must not be greater than 180."},
		{"status", map[string]any{"status": "pending"}, "The selected status is invalid."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			_, err := f.appointments.CreateAppointment(ctx, admin, with(base, tt.overrides))
			errs := requireFieldError(t, err, tt.field)
			assert.Len(t, errs, 1)
			assert.Equal(t, []string{tt.message}, errs[tt.field])
		})
	}

	assert.Zero(t, countRows(t, f.db, &entity.Appointment{}))
}

func TestAppointmentWithDeletedDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	require.NoError(t, f.doctors.DeleteDoctor(ctx, admin, doctorID))

	_, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	})
	requireFieldError(t, err, "doctor_id")
}

func TestDoctorCannotDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	appointment, err := f.appointments.CreateAppointment(ctx, doctorActor, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
		"duration_minutes": 45,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, appointment.DurationMinutes)

	assert.ErrorIs(t, f.appointments.DeleteAppointment(ctx, doctorActor, appointment.ID), ErrForbidden)
	assert.NoError(t, f.appointments.DeleteAppointment(ctx, receptionist, appointment.ID))

	_, err = f.appointments.GetAppointment(ctx, admin, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
