package entity

import (
	"time"

	"gorm.io/gorm"
)

// Doctor is a clinician working at the surgery.
type Doctor struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string         `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string         `gorm:"type:varchar(255);not null" json:"last_name"`
	Email          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_doctors_email,where:deleted_at IS NULL" json:"email"`
	Phone          string         `gorm:"type:varchar(20);not null" json:"phone"`
	Specialization string         `gorm:"type:varchar(255);not null;index" json:"specialization"`
	LicenseNumber  string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_doctors_license_number,where:deleted_at IS NULL" json:"license_number"`
	Qualifications *string        `gorm:"type:text" json:"qualifications"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Appointments   []Appointment   `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:DoctorID" json:"medical_records,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
