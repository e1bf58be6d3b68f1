package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MedicalRecord is the clinical note of a single visit.
type MedicalRecord struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     uint           `gorm:"not null;index" json:"patient_id"`
	DoctorID      uint           `gorm:"not null;index" json:"doctor_id"`
	AppointmentID *uint          `gorm:"uniqueIndex:idx_medical_records_appointment_id,where:deleted_at IS NULL" json:"appointment_id"`
	VisitDate     datatypes.Date `gorm:"not null;index" json:"visit_date"`
	Diagnosis     string         `gorm:"type:text;not null" json:"diagnosis"`
	Symptoms      *string        `gorm:"type:text" json:"symptoms"`
	Treatment     *string        `gorm:"type:text" json:"treatment"`
	Prescription  *string        `gorm:"type:text" json:"prescription"`
	Notes         *string        `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
