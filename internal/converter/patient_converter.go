package converter

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO.
// Only the listed relations are rendered.
func PatientToResponse(patient *entity.Patient, relations ...string) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		Email:          patient.Email,
		Phone:          patient.Phone,
		DateOfBirth:    dateString(patient.DateOfBirth),
		Gender:         string(patient.Gender),
		Address:        patient.Address,
		NHSNumber:      patient.NHSNumber,
		MedicalHistory: patient.MedicalHistory,
		Allergies:      patient.Allergies,
		CreatedAt:      isoString(patient.CreatedAt),
		UpdatedAt:      isoString(patient.UpdatedAt),
	}

	if has(relations, entity.RelationAppointments) {
		response.Appointments = dto.LoadedRelationList(AppointmentsToResponses(patient.Appointments))
	}
	if has(relations, entity.RelationMedicalRecords) {
		response.MedicalRecords = dto.LoadedRelationList(MedicalRecordsToResponses(patient.MedicalRecords))
	}

	return response
}

func PatientsToResponses(patients []entity.Patient, relations ...string) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i], relations...)
	}
	return responses
}

// ApplyPatientFields copies validated fields onto patient.
func ApplyPatientFields(patient *entity.Patient, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "first_name":
			patient.FirstName = stringValue(value)
		case "last_name":
			patient.LastName = stringValue(value)
		case "email":
			patient.Email = stringValue(value)
		case "phone":
			patient.Phone = stringValue(value)
		case "date_of_birth":
			patient.DateOfBirth = dateValue(value)
		case "gender":
			patient.Gender = entity.Gender(stringValue(value))
		case "address":
			patient.Address = stringPtr(value)
		case "nhs_number":
			patient.NHSNumber = stringValue(value)
		case "medical_history":
			patient.MedicalHistory = stringPtr(value)
		case "allergies":
			patient.Allergies = stringPtr(value)
		}
	}
}
