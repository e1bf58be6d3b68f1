package dto

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	v "github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"
)

// PatientUniqueColumns are the columns guarded by a unique index.
var PatientUniqueColumns = []string{"email", "nhs_number"}

var PatientCreateRules = v.RuleSet{
	v.On("first_name", v.Required(), v.String(), v.Max(255)),
	v.On("last_name", v.Required(), v.String(), v.Max(255)),
	v.On("email", v.Required(), v.Email(), v.Unique("patients", "email")),
	v.On("phone", v.Required(), v.String(), v.Regex("uk_mobile").WithMessage(msgUKMobile)),
	v.On("date_of_birth", v.Required(), v.Date(), v.Before(v.Today).WithMessage(msgDateOfBirthPast)),
	v.On("gender", v.Required(), v.String(), v.In(entity.Genders()...)),
	v.On("address", v.Nullable(), v.String()),
	v.On("nhs_number", v.Required(), v.String(), v.Regex("nhs_number").WithMessage(msgNHSNumber), v.Unique("patients", "nhs_number")),
	v.On("medical_history", v.Nullable(), v.String()),
	v.On("allergies", v.Nullable(), v.String()),
}

var PatientUpdateRules = v.RuleSet{
	v.On("first_name", v.Sometimes(), v.Required(), v.String(), v.Max(255)),
	v.On("last_name", v.Sometimes(), v.Required(), v.String(), v.Max(255)),
	v.On("email", v.Sometimes(), v.Required(), v.Email(), v.Unique("patients", "email")),
	v.On("phone", v.Sometimes(), v.Required(), v.String(), v.Regex("uk_mobile").WithMessage(msgUKMobile)),
	v.On("date_of_birth", v.Sometimes(), v.Required(), v.Date(), v.Before(v.Today).WithMessage(msgDateOfBirthPast)),
	v.On("gender", v.Sometimes(), v.Required(), v.String(), v.In(entity.Genders()...)),
	v.On("address", v.Nullable(), v.String()),
	v.On("nhs_number", v.Sometimes(), v.Required(), v.String(), v.Regex("nhs_number").WithMessage(msgNHSNumber), v.Unique("patients", "nhs_number")),
	v.On("medical_history", v.Nullable(), v.String()),
	v.On("allergies", v.Nullable(), v.String()),
}

// PatientResponse is the wire form of a patient.
type PatientResponse struct {
	ID             uint                                `json:"id"`
	FirstName      string                              `json:"first_name"`
	LastName       string                              `json:"last_name"`
	Email          string                              `json:"email"`
	Phone          string                              `json:"phone"`
	DateOfBirth    string                              `json:"date_of_birth"`
	Gender         string                              `json:"gender"`
	Address        *string                             `json:"address"`
	NHSNumber      string                              `json:"nhs_number"`
	MedicalHistory *string                             `json:"medical_history"`
	Allergies      *string                             `json:"allergies"`
	Appointments   RelationList[AppointmentResponse]   `json:"appointments,omitzero"`
	MedicalRecords RelationList[MedicalRecordResponse] `json:"medical_records,omitzero"`
	CreatedAt      string                              `json:"created_at"`
	UpdatedAt      string                              `json:"updated_at"`
}
