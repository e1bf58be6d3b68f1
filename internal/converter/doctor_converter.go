package converter

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// Only the listed relations are rendered.
func DoctorToResponse(doctor *entity.Doctor, relations ...string) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Specialization: doctor.Specialization,
		LicenseNumber:  doctor.LicenseNumber,
		Qualifications: doctor.Qualifications,
		CreatedAt:      isoString(doctor.CreatedAt),
		UpdatedAt:      isoString(doctor.UpdatedAt),
	}

	if has(relations, entity.RelationAppointments) {
		response.Appointments = dto.LoadedRelationList(AppointmentsToResponses(doctor.Appointments))
	}
	if has(relations, entity.RelationMedicalRecords) {
		response.MedicalRecords = dto.LoadedRelationList(MedicalRecordsToResponses(doctor.MedicalRecords))
	}

	return response
}

func DoctorsToResponses(doctors []entity.Doctor, relations ...string) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], relations...)
	}
	return responses
}

func ApplyDoctorFields(doctor *entity.Doctor, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "first_name":
			doctor.FirstName = stringValue(value)
		case "last_name":
			doctor.LastName = stringValue(value)
		case "email":
			doctor.Email = stringValue(value)
		case "phone":
			doctor.Phone = stringValue(value)
		case "specialization":
			doctor.Specialization = stringValue(value)
		case "license_number":
			doctor.LicenseNumber = stringValue(value)
		case "qualifications":
			doctor.Qualifications = stringPtr(value)
		}
	}
}
