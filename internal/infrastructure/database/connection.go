package database

import (
	"fmt"

	"github.com/codingwithstephen/gp-surgery-mobile/config"

	"gorm.io/gorm"
)

// NewConnection opens the database selected by cfg.Driver.
func NewConnection(cfg config.DBConfig, env string) (*gorm.DB, error) {
	switch cfg.Driver {
	case "", "postgres":
		return NewPostgresConnection(cfg, env)
	case "sqlite":
		return NewSQLiteConnection(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
