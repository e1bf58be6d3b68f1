package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string            `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionPatientCreate       = "patient.create"
	AuditActionPatientUpdate       = "patient.update"
	AuditActionPatientDelete       = "patient.delete"
	AuditActionDoctorCreate        = "doctor.create"
	AuditActionDoctorUpdate        = "doctor.update"
	AuditActionDoctorDelete        = "doctor.delete"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentUpdate   = "appointment.update"
	AuditActionAppointmentDelete   = "appointment.delete"
	AuditActionMedicalRecordCreate = "medical_record.create"
	AuditActionMedicalRecordUpdate = "medical_record.update"
	AuditActionMedicalRecordDelete = "medical_record.delete"
)
