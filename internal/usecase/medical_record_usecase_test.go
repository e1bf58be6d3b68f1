package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateFromToday(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

// A visit date in the future is accepted on create but rejected on update.
func TestMedicalRecordVisitDateAsymmetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	future := dateFromToday(5)
	record, err := f.medicalRecords.CreateMedicalRecord(ctx, doctorActor, map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"visit_date": future,
		"diagnosis":  "Seasonal rhinitis",
	})
	require.NoError(t, err)
	assert.Equal(t, future, record.VisitDate)

	_, err = f.medicalRecords.UpdateMedicalRecord(ctx, doctorActor, record.ID, map[string]any{"visit_date": future})
	errs := requireFieldError(t, err, "visit_date")
	assert.Equal(t, []string{"The visit date cannot be in the future."}, errs["visit_date"])

	today := dateFromToday(0)
	updated, err := f.medicalRecords.UpdateMedicalRecord(ctx, doctorActor, record.ID, map[string]any{"visit_date": today})
	require.NoError(t, err)
	assert.Equal(t, today, updated.VisitDate)
}

func TestMedicalRecordLinksAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	appointment, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	})
	require.NoError(t, err)

	record, err := f.medicalRecords.CreateMedicalRecord(ctx, admin, map[string]any{
		"patient_id":     patientID,
		"doctor_id":      doctorID,
		"appointment_id": appointment.ID,
		"visit_date":     dateFromToday(0),
		"diagnosis":      "Hypertension",
		"prescription":   "Amlodipine 5mg",
	})
	require.NoError(t, err)
	require.NotNil(t, record.AppointmentID)
	assert.Equal(t, appointment.ID, *record.AppointmentID)
	require.NotNil(t, record.Appointment.Value)
	assert.Equal(t, appointment.ID, record.Appointment.Value.ID)
	require.NotNil(t, record.Patient.Value)
	require.NotNil(t, record.Doctor.Value)

	shown, err := f.appointments.GetAppointment(ctx, admin, appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, shown.MedicalRecord.Value)
	assert.Equal(t, "Hypertension", shown.MedicalRecord.Value.Diagnosis)

	unlinked, err := f.medicalRecords.UpdateMedicalRecord(ctx, admin, record.ID, map[string]any{"appointment_id": nil})
	require.NoError(t, err)
	assert.Nil(t, unlinked.AppointmentID)
	assert.True(t, unlinked.Appointment.Loaded)
	assert.Nil(t, unlinked.Appointment.Value)
}

func TestCreateMedicalRecordValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	_, err := f.medicalRecords.CreateMedicalRecord(ctx, admin, map[string]any{
		"patient_id":     patientID,
		"doctor_id":      doctorID,
		"appointment_id": 42,
		"visit_date":     dateFromToday(0),
		"diagnosis":      "Migraine",
	})
	errs := requireFieldError(t, err, "appointment_id")
	assert.Len(t, errs, 1)

	_, err = f.medicalRecords.CreateMedicalRecord(ctx, admin, map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"visit_date": dateFromToday(0),
		"diagnosis":  "   ",
	})
	requireFieldError(t, err, "diagnosis")

	assert.Zero(t, countRows(t, f.db, &entity.MedicalRecord{}))
}

func TestReceptionistCannotReadMedicalRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.medicalRecords.ListMedicalRecords(ctx, receptionist, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.medicalRecords.GetMedicalRecord(ctx, receptionist, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMedicalRecordListAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	record, err := f.medicalRecords.CreateMedicalRecord(ctx, admin, map[string]any{
		"patient_id": patientID,
		"doctor_id":  doctorID,
		"visit_date": dateFromToday(-1),
		"diagnosis":  "Sprained ankle",
	})
	require.NoError(t, err)

	page, err := f.medicalRecords.ListMedicalRecords(ctx, doctorActor, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Appointment.Loaded)
	assert.Nil(t, page.Items[0].Appointment.Value)

	assert.ErrorIs(t, f.medicalRecords.DeleteMedicalRecord(ctx, doctorActor, record.ID), ErrForbidden)
	require.NoError(t, f.medicalRecords.DeleteMedicalRecord(ctx, admin, record.ID))

	_, err = f.medicalRecords.GetMedicalRecord(ctx, admin, record.ID)
	assert.ErrorIs(t, err, ErrMedicalRecordNotFound)
}

func TestAppointmentHasOneMedicalRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	appointment, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	})
	require.NoError(t, err)

	recordInput := func(diagnosis string, appointmentID any) map[string]any {
		input := map[string]any{
			"patient_id": patientID,
			"doctor_id":  doctorID,
			"visit_date": dateFromToday(0),
			"diagnosis":  diagnosis,
		}
		if appointmentID != nil {
			input["appointment_id"] = appointmentID
		}
		return input
	}

	first, err := f.medicalRecords.CreateMedicalRecord(ctx, admin, recordInput("Tonsillitis", appointment.ID))
	require.NoError(t, err)

	_, err = f.medicalRecords.CreateMedicalRecord(ctx, admin, recordInput("Otitis media", appointment.ID))
	errs := requireFieldError(t, err, "appointment_id")
	assert.Equal(t, []string{"The appointment id has already been taken."}, errs["appointment_id"])

	// The record keeps its own appointment.
	_, err = f.medicalRecords.UpdateMedicalRecord(ctx, admin, first.ID, map[string]any{"appointment_id": appointment.ID})
	require.NoError(t, err)

	second, err := f.medicalRecords.CreateMedicalRecord(ctx, admin, recordInput("Otitis media", nil))
	require.NoError(t, err)
	_, err = f.medicalRecords.UpdateMedicalRecord(ctx, admin, second.ID, map[string]any{"appointment_id": appointment.ID})
	requireFieldError(t, err, "appointment_id")

	// Deleting the record frees the appointment.
	require.NoError(t, f.medicalRecords.DeleteMedicalRecord(ctx, admin, first.ID))
	_, err = f.medicalRecords.UpdateMedicalRecord(ctx, admin, second.ID, map[string]any{"appointment_id": appointment.ID})
	require.NoError(t, err)

	shown, err := f.appointments.GetAppointment(ctx, admin, appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, shown.MedicalRecord.Value)
	assert.Equal(t, second.ID, shown.MedicalRecord.Value.ID)
}

func TestAppointmentRecordRaceCaughtByIndex(t *testing.T) {
	f := newFixture(t, withStaleLookup)
	ctx := context.Background()
	patientID, doctorID := seedPatientAndDoctor(t, f)

	appointment, err := f.appointments.CreateAppointment(ctx, admin, map[string]any{
		"patient_id":       patientID,
		"doctor_id":        doctorID,
		"appointment_date": futureDate(),
	})
	require.NoError(t, err)

	input := map[string]any{
		"patient_id":     patientID,
		"doctor_id":      doctorID,
		"appointment_id": appointment.ID,
		"visit_date":     dateFromToday(0),
		"diagnosis":      "Tonsillitis",
	}
	_, err = f.medicalRecords.CreateMedicalRecord(ctx, admin, input)
	require.NoError(t, err)

	_, err = f.medicalRecords.CreateMedicalRecord(ctx, admin, input)
	errs := requireFieldError(t, err, "appointment_id")
	assert.Equal(t, []string{"The appointment id has already been taken."}, errs["appointment_id"])
	assert.Equal(t, int64(1), countRows(t, f.db, &entity.MedicalRecord{}))
}
