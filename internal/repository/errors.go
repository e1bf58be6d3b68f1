package repository

import (
	"errors"
	"strings"

	domainRepo "github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

const (
	sqliteUniquePrefix = "UNIQUE constraint failed: "
	sqliteForeignKey   = "FOREIGN KEY constraint failed"
)

// translateError maps constraint violations to *domainRepo.ConstraintError.
// Other errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &domainRepo.ConstraintError{Kind: domainRepo.ErrDuplicate, Constraint: pgErr.ConstraintName, Err: err}
		case foreignKeyViolationCode:
			return &domainRepo.ConstraintError{Kind: domainRepo.ErrForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		}
		return err
	}

	// SQLite reports the offending columns only in the message, e.g.
	// "constraint failed: UNIQUE constraint failed: patients.email (2067)".
	msg := err.Error()
	if i := strings.Index(msg, sqliteUniquePrefix); i >= 0 {
		constraint := msg[i+len(sqliteUniquePrefix):]
		if j := strings.Index(constraint, " ("); j >= 0 {
			constraint = constraint[:j]
		}
		return &domainRepo.ConstraintError{Kind: domainRepo.ErrDuplicate, Constraint: constraint, Err: err}
	}
	if strings.Contains(msg, sqliteForeignKey) {
		return &domainRepo.ConstraintError{Kind: domainRepo.ErrForeignKey, Err: err}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &domainRepo.ConstraintError{Kind: domainRepo.ErrDuplicate, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &domainRepo.ConstraintError{Kind: domainRepo.ErrForeignKey, Err: err}
	}
	return err
}
