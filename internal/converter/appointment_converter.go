package converter

import (
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Nested patient, doctor and medical record carry no relations of their own.
func AppointmentToResponse(appointment *entity.Appointment, relations ...string) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: isoString(appointment.AppointmentDate),
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		CreatedAt:       isoString(appointment.CreatedAt),
		UpdatedAt:       isoString(appointment.UpdatedAt),
	}

	if has(relations, entity.RelationPatient) {
		response.Patient = dto.LoadedRelation(PatientToResponse(appointment.Patient))
	}
	if has(relations, entity.RelationDoctor) {
		response.Doctor = dto.LoadedRelation(DoctorToResponse(appointment.Doctor))
	}
	if has(relations, entity.RelationMedicalRecord) {
		response.MedicalRecord = dto.LoadedRelation(MedicalRecordToResponse(appointment.MedicalRecord))
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment, relations ...string) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], relations...)
	}
	return responses
}

func ApplyAppointmentFields(appointment *entity.Appointment, fields map[string]any) {
	for name, value := range fields {
		switch name {
		case "patient_id":
			appointment.PatientID = uintValue(value)
		case "doctor_id":
			appointment.DoctorID = uintValue(value)
		case "appointment_date":
			appointment.AppointmentDate = timeValue(value).UTC()
		case "duration_minutes":
			if n, ok := value.(int); ok {
				appointment.DurationMinutes = n
			}
		case "status":
			if s, ok := value.(string); ok {
				appointment.Status = entity.AppointmentStatus(s)
			}
		case "reason":
			appointment.Reason = stringPtr(value)
		case "notes":
			appointment.Notes = stringPtr(value)
		}
	}
}
