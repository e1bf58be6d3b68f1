package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PageSize is the fixed number of items per listing page.
const PageSize = 15

var (
	ErrUnauthenticated = service.ErrUnauthenticated
	ErrForbidden       = service.ErrForbidden
)

// Deps are the collaborators shared by the resource usecases.
type Deps struct {
	DB            *gorm.DB
	Log           *logrus.Logger
	Validator     *validator.CustomValidator
	Lookup        validator.Lookup
	Gate          service.Gate
	AuditService  service.AuditService
	MaskForbidden bool
}

// Authorizer lets the delivery layer reject an actor before it reads the
// request body.
type Authorizer interface {
	// Authorize checks action on the whole resource when id is 0 and on a
	// single record otherwise.
	Authorize(ctx context.Context, actor *entity.Actor, action entity.Action, id uint) error
}

// resource holds the steps every resource usecase runs in the same order:
// authorize, resolve, validate, store, serialize.
type resource struct {
	Deps
	name     entity.Resource
	notFound error
}

func (r *resource) Authorize(ctx context.Context, actor *entity.Actor, action entity.Action, id uint) error {
	if id == 0 {
		return r.authorizeClass(ctx, actor, action)
	}
	return r.authorizeInstance(ctx, actor, action, id)
}

func (r *resource) authorizeClass(ctx context.Context, actor *entity.Actor, action entity.Action) error {
	return r.Gate.Authorize(ctx, actor, action, entity.ClassOf(r.name))
}

// authorizeInstance optionally reports a denial as not found so that a caller
// cannot probe which ids exist.
func (r *resource) authorizeInstance(ctx context.Context, actor *entity.Actor, action entity.Action, id uint) error {
	err := r.Gate.Authorize(ctx, actor, action, entity.InstanceOf(r.name, id))
	if r.MaskForbidden && errors.Is(err, service.ErrForbidden) {
		return r.notFound
	}
	return err
}

func (r *resource) validate(ctx context.Context, rules validator.RuleSet, input map[string]any, ignoreID uint) (map[string]any, error) {
	fields, err := r.Validator.ValidateFields(ctx, rules, input, validator.Options{
		Lookup:   r.Lookup,
		IgnoreID: ignoreID,
	})
	if err != nil {
		var verrs validator.Errors
		if !errors.As(err, &verrs) {
			r.Log.Warnf("Failed to validate %s input: %+v", r.name, err)
		}
		return nil, err
	}
	return fields, nil
}

// writeConflict turns a constraint violation raised by the database into the
// validation error the request would have produced had it not raced another
// write. Other errors are returned unchanged.
func (r *resource) writeConflict(ctx context.Context, err error, rules validator.RuleSet, input map[string]any, ignoreID uint, uniqueColumns []string) error {
	var constraintErr *repository.ConstraintError
	if !errors.As(err, &constraintErr) {
		return err
	}

	if errors.Is(err, repository.ErrDuplicate) {
		for _, column := range uniqueColumns {
			if constraintErr.Constraint != "" && strings.HasSuffix(constraintErr.Constraint, column) {
				return validator.Taken(column)
			}
		}
	}

	// The constraint did not name a known column; the committed row that won
	// the race is visible now, so the rules themselves find the field.
	if _, verr := r.validate(ctx, rules, input, ignoreID); verr != nil {
		return verr
	}
	return err
}

func (r *resource) audit(err error) {
	if err != nil {
		r.Log.Warnf("Failed to create audit log: %+v", err)
	}
}

// maxPage is the last page whose offset still fits in an int.
const maxPage = math.MaxInt/PageSize + 1

// pageBounds clamps page to [1, maxPage] and returns the matching limit and
// offset.
func pageBounds(page int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	return page, PageSize, (page - 1) * PageSize
}
