package entity

import (
	"time"

	"gorm.io/gorm"
)

// AppointmentStatus represents the state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists the accepted status values.
func AppointmentStatuses() []string {
	return []string{
		string(AppointmentStatusScheduled),
		string(AppointmentStatusConfirmed),
		string(AppointmentStatusCompleted),
		string(AppointmentStatusCancelled),
	}
}

const DefaultAppointmentDuration = 30

// Appointment is a booked slot between a patient and a doctor.
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint              `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	DurationMinutes int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Reason          *string           `gorm:"type:varchar(500)" json:"reason"`
	Notes           *string           `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Patient       *Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:AppointmentID" json:"medical_record,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
