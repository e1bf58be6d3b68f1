package database

import (
	"fmt"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Appointment{},
		&entity.MedicalRecord{},
		&entity.AuditLog{},
	}
}

// AutoMigrate creates or updates the tables and the partial unique indexes of
// all entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
