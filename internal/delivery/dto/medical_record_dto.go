package dto

import v "github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

// MedicalRecordUniqueColumns are the columns guarded by a unique index. An
// appointment has at most one active medical record.
var MedicalRecordUniqueColumns = []string{"appointment_id"}

// MedicalRecordCreateRules carry no upper bound on visit_date; only updates
// reject a visit in the future.
var MedicalRecordCreateRules = v.RuleSet{
	v.On("patient_id", v.Required(), v.Exists("patients")),
	v.On("doctor_id", v.Required(), v.Exists("doctors")),
	v.On("appointment_id", v.Nullable(), v.Exists("appointments"), v.Unique("medical_records", "appointment_id")),
	v.On("visit_date", v.Required(), v.Date()),
	v.On("diagnosis", v.Required(), v.String()),
	v.On("symptoms", v.Nullable(), v.String()),
	v.On("treatment", v.Nullable(), v.String()),
	v.On("prescription", v.Nullable(), v.String()),
	v.On("notes", v.Nullable(), v.String()),
}

var MedicalRecordUpdateRules = v.RuleSet{
	v.On("patient_id", v.Sometimes(), v.Required(), v.Exists("patients")),
	v.On("doctor_id", v.Sometimes(), v.Required(), v.Exists("doctors")),
	v.On("appointment_id", v.Nullable(), v.Exists("appointments"), v.Unique("medical_records", "appointment_id")),
	v.On("visit_date", v.Sometimes(), v.Required(), v.Date(), v.BeforeOrEqual(v.Today).WithMessage(msgVisitDate)),
	v.On("diagnosis", v.Sometimes(), v.Required(), v.String()),
	v.On("symptoms", v.Nullable(), v.String()),
	v.On("treatment", v.Nullable(), v.String()),
	v.On("prescription", v.Nullable(), v.String()),
	v.On("notes", v.Nullable(), v.String()),
}

// MedicalRecordResponse is the wire form of a medical record.
type MedicalRecordResponse struct {
	ID            uint                          `json:"id"`
	PatientID     uint                          `json:"patient_id"`
	DoctorID      uint                          `json:"doctor_id"`
	AppointmentID *uint                         `json:"appointment_id"`
	VisitDate     string                        `json:"visit_date"`
	Diagnosis     string                        `json:"diagnosis"`
	Symptoms      *string                       `json:"symptoms"`
	Treatment     *string                       `json:"treatment"`
	Prescription  *string                       `json:"prescription"`
	Notes         *string                       `json:"notes"`
	Patient       Relation[PatientResponse]     `json:"patient,omitzero"`
	Doctor        Relation[DoctorResponse]      `json:"doctor,omitzero"`
	Appointment   Relation[AppointmentResponse] `json:"appointment,omitzero"`
	CreatedAt     string                        `json:"created_at"`
	UpdatedAt     string                        `json:"updated_at"`
}
