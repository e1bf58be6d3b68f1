package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Patient is a person registered with the surgery.
type Patient struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string         `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string         `gorm:"type:varchar(255);not null" json:"last_name"`
	Email          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_patients_email,where:deleted_at IS NULL" json:"email"`
	Phone          string         `gorm:"type:varchar(20);not null" json:"phone"`
	DateOfBirth    datatypes.Date `gorm:"not null" json:"date_of_birth"`
	Gender         Gender         `gorm:"type:varchar(10);not null" json:"gender"`
	Address        *string        `gorm:"type:text" json:"address"`
	NHSNumber      string         `gorm:"column:nhs_number;type:char(10);not null;uniqueIndex:idx_patients_nhs_number,where:deleted_at IS NULL" json:"nhs_number"`
	MedicalHistory *string        `gorm:"type:text" json:"medical_history"`
	Allergies      *string        `gorm:"type:text" json:"allergies"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the accepted gender values.
func Genders() []string {
	return []string{string(GenderMale), string(GenderFemale), string(GenderOther)}
}
