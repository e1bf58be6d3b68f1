package converter

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO.
func MedicalRecordToResponse(record *entity.MedicalRecord, relations ...string) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		AppointmentID: record.AppointmentID,
		VisitDate:     dateString(record.VisitDate),
		Diagnosis:     record.Diagnosis,
		Symptoms:      record.Symptoms,
		Treatment:     record.Treatment,
		Prescription:  record.Prescription,
		Notes:         record.Notes,
		CreatedAt:     isoString(record.CreatedAt),
		UpdatedAt:     isoString(record.UpdatedAt),
	}

	if has(relations, entity.RelationPatient) {
		response.Patient = dto.LoadedRelation(PatientToResponse(record.Patient))
	}
	if has(relations, entity.RelationDoctor) {
		response.Doctor = dto.LoadedRelation(DoctorToResponse(record.Doctor))
	}
	if has(relations, entity.RelationAppointment) {
		response.Appointment = dto.LoadedRelation(AppointmentToResponse(record.Appointment))
	}

	return response
}

func MedicalRecordsToResponses(records []entity.MedicalRecord, relations ...string) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i], relations...)
	}
	return responses
}

func ApplyMedicalRecordFields(record *entity.MedicalRecord, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "patient_id":
			record.PatientID = uintValue(value)
		case "doctor_id":
			record.DoctorID = uintValue(value)
		case "appointment_id":
			record.AppointmentID = uintPtr(value)
		case "visit_date":
			record.VisitDate = dateValue(value)
		case "diagnosis":
			record.Diagnosis = stringValue(value)
		case "symptoms":
			record.Symptoms = stringPtr(value)
		case "treatment":
			record.Treatment = stringPtr(value)
		case "prescription":
			record.Prescription = stringPtr(value)
		case "notes":
			record.Notes = stringPtr(value)
		}
	}
}
