package converter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var stamp = time.Date(2026, 3, 10, 9, 30, 15, 123456000, time.FixedZone("BST", 3600))

func samplePatient() *entity.Patient {
	return &entity.Patient{
		ID:          7,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Phone:       "07700 900123",
		DateOfBirth: datatypes.Date(time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)),
		Gender:      entity.GenderFemale,
		NHSNumber:   "4505577104",
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func keyOrder(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	_, err = decoder.Token()
	require.NoError(t, err)

	var keys []string
	for decoder.More() {
		key, err := decoder.Token()
		require.NoError(t, err)
		keys = append(keys, key.(string))
		var skip json.RawMessage
		require.NoError(t, decoder.Decode(&skip))
	}
	return keys
}

func TestPatientResponseFieldOrder(t *testing.T) {
	keys := keyOrder(t, PatientToResponse(samplePatient(), entity.RelationAppointments, entity.RelationMedicalRecords))
	assert.Equal(t, []string{
		"id", "first_name", "last_name", "email", "phone", "date_of_birth", "gender", "address",
		"nhs_number", "medical_history", "allergies", "appointments", "medical_records",
		"created_at", "updated_at",
	}, keys)
}

func TestTimestampsAndDates(t *testing.T) {
	response := PatientToResponse(samplePatient())
	assert.Equal(t, "2026-03-10T08:30:15.123456Z", response.CreatedAt)
	assert.Equal(t, "1990-05-01", response.DateOfBirth)
}

func TestRelationsOmittedUnlessLoaded(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              3,
		PatientID:       7,
		DoctorID:        2,
		AppointmentDate: stamp,
		DurationMinutes: 30,
		Status:          entity.AppointmentStatusScheduled,
		Patient:         samplePatient(),
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}

	bare := keyOrder(t, AppointmentToResponse(appointment))
	assert.NotContains(t, bare, "patient")
	assert.NotContains(t, bare, "medical_record")

	raw, err := json.Marshal(AppointmentToResponse(appointment, entity.RelationPatient, entity.RelationDoctor, entity.RelationMedicalRecord))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body, "doctor")
	assert.Nil(t, body["doctor"])
	assert.Nil(t, body["medical_record"])

	patient, ok := body["patient"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", patient["first_name"])
	assert.NotContains(t, patient, "appointments", "nested resources carry no relations")
}

func TestApplyFieldsOnlyTouchesPresentKeys(t *testing.T) {
	patient := samplePatient()
	address := "1 Downing Street"
	patient.Address = &address

	ApplyPatientFields(patient, map[string]any{"first_name": "Augusta", "allergies": nil})
	assert.Equal(t, "Augusta", patient.FirstName)
	assert.Equal(t, "Lovelace", patient.LastName)
	require.NotNil(t, patient.Address)
	assert.Nil(t, patient.Allergies)

	record := &entity.MedicalRecord{}
	ApplyMedicalRecordFields(record, map[string]any{
		"patient_id":     uint(7),
		"appointment_id": uint(3),
		"visit_date":     time.Date(2026, 3, 9, 15, 45, 0, 0, time.UTC),
	})
	assert.Equal(t, uint(7), record.PatientID)
	require.NotNil(t, record.AppointmentID)
	assert.Equal(t, uint(3), *record.AppointmentID)
	assert.Equal(t, "2026-03-09", dateString(record.VisitDate))
}

func TestActorToResponse(t *testing.T) {
	actor := &entity.Actor{UserID: uuid.New(), Email: "r@example.com", RoleID: entity.RoleIDReceptionist}

	response := ActorToResponse(actor)
	assert.Equal(t, actor.UserID, response.ID)
	assert.Equal(t, entity.RoleReceptionist, response.Role)
	assert.Nil(t, ActorToResponse(nil))
}
