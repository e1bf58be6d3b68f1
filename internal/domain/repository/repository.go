package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrDuplicate  = errors.New("duplicate value violates unique constraint")
	ErrForeignKey = errors.New("referenced record does not exist")
)

// ConstraintError is a write rejected by a database constraint. It matches
// ErrDuplicate or ErrForeignKey through errors.Is.
type ConstraintError struct {
	Kind       error
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (%s): %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Repository is the store contract shared by every soft-deletable entity.
// Lookups never return soft-deleted rows; FindByID returns nil, nil when the
// row does not exist. Relations are entity.Relation* names.
type Repository[T any] interface {
	Create(ctx context.Context, db *gorm.DB, entity *T) error
	FindByID(ctx context.Context, db *gorm.DB, id uint, relations ...string) (*T, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int, relations ...string) ([]T, int64, error)
	Update(ctx context.Context, db *gorm.DB, entity *T) error
	Delete(ctx context.Context, db *gorm.DB, id uint) (int64, error)
	ExistsActive(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	IsUnique(ctx context.Context, db *gorm.DB, column string, value any, ignoreID uint) (bool, error)
}
