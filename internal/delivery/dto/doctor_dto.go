package dto

import v "github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

var DoctorUniqueColumns = []string{"email", "license_number"}

var DoctorCreateRules = v.RuleSet{
	v.On("first_name", v.Required(), v.String(), v.Max(255)),
	v.On("last_name", v.Required(), v.String(), v.Max(255)),
	v.On("email", v.Required(), v.Email(), v.Unique("doctors", "email")),
	v.On("phone", v.Required(), v.String(), v.Regex("uk_mobile").WithMessage(msgUKMobile)),
	v.On("specialization", v.Required(), v.String(), v.Max(255)),
	v.On("license_number", v.Required(), v.String(), v.Unique("doctors", "license_number")),
	v.On("qualifications", v.Nullable(), v.String()),
}

var DoctorUpdateRules = v.RuleSet{
	v.On("first_name", v.Sometimes(), v.Required(), v.String(), v.Max(255)),
	v.On("last_name", v.Sometimes(), v.Required(), v.String(), v.Max(255)),
	v.On("email", v.Sometimes(), v.Required(), v.Email(), v.Unique("doctors", "email")),
	v.On("phone", v.Sometimes(), v.Required(), v.String(), v.Regex("uk_mobile").WithMessage(msgUKMobile)),
	v.On("specialization", v.Sometimes(), v.Required(), v.String(), v.Max(255)),
	v.On("license_number", v.Sometimes(), v.Required(), v.String(), v.Unique("doctors", "license_number")),
	v.On("qualifications", v.Nullable(), v.String()),
}

// DoctorResponse is the wire form of a doctor.
type DoctorResponse struct {
	ID             uint                                `json:"id"`
	FirstName      string                              `json:"first_name"`
	LastName       string                              `json:"last_name"`
	Email          string                              `json:"email"`
	Phone          string                              `json:"phone"`
	Specialization string                              `json:"specialization"`
	LicenseNumber  string                              `json:"license_number"`
	Qualifications *string                             `json:"qualifications"`
	Appointments   RelationList[AppointmentResponse]   `json:"appointments,omitzero"`
	MedicalRecords RelationList[MedicalRecordResponse] `json:"medical_records,omitzero"`
	CreatedAt      string                              `json:"created_at"`
	UpdatedAt      string                              `json:"updated_at"`
}
