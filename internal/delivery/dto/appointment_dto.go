package dto

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	v "github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"
)

var AppointmentCreateRules = v.RuleSet{
	v.On("patient_id", v.Required(), v.Exists("patients")),
	v.On("doctor_id", v.Required(), v.Exists("doctors")),
	v.On("appointment_date", v.Required(), v.Date(), v.After(v.Now).WithMessage(msgAppointmentDate)),
	v.On("duration_minutes", v.Sometimes(), v.Integer(), v.Between(15, 180)),
	v.On("status", v.Sometimes(), v.In(entity.AppointmentStatuses()...)),
	v.On("reason", v.Nullable(), v.String(), v.Max(500)),
	v.On("notes", v.Nullable(), v.String()),
}

// AppointmentUpdateRules accept an appointment_date in the past so that
// historic appointments can be corrected.
var AppointmentUpdateRules = v.RuleSet{
	v.On("patient_id", v.Sometimes(), v.Required(), v.Exists("patients")),
	v.On("doctor_id", v.Sometimes(), v.Required(), v.Exists("doctors")),
	v.On("appointment_date", v.Sometimes(), v.Required(), v.Date()),
	v.On("duration_minutes", v.Sometimes(), v.Integer(), v.Between(15, 180)),
	v.On("status", v.Sometimes(), v.In(entity.AppointmentStatuses()...)),
	v.On("reason", v.Nullable(), v.String(), v.Max(500)),
	v.On("notes", v.Nullable(), v.String()),
}

// AppointmentResponse is the wire form of an appointment.
type AppointmentResponse struct {
	ID              uint                            `json:"id"`
	PatientID       uint                            `json:"patient_id"`
	DoctorID        uint                            `json:"doctor_id"`
	AppointmentDate string                          `json:"appointment_date"`
	DurationMinutes int                             `json:"duration_minutes"`
	Status          string                          `json:"status"`
	Reason          *string                         `json:"reason"`
	Notes           *string                         `json:"notes"`
	Patient         Relation[PatientResponse]       `json:"patient,omitzero"`
	Doctor          Relation[DoctorResponse]        `json:"doctor,omitzero"`
	MedicalRecord   Relation[MedicalRecordResponse] `json:"medical_record,omitzero"`
	CreatedAt       string                          `json:"created_at"`
	UpdatedAt       string                          `json:"updated_at"`
}
