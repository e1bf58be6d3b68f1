package service

import (
	"context"
	"errors"
	"slices"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("this action is unauthorized")
)

// Policy decides whether actor may perform action on target. The actor is
// never nil.
type Policy interface {
	Allows(ctx context.Context, actor *entity.Actor, action entity.Action, target entity.Target) bool
}

// Gate is consulted before any validation or store access.
type Gate interface {
	Authorize(ctx context.Context, actor *entity.Actor, action entity.Action, target entity.Target) error
}

type gate struct {
	log    *logrus.Logger
	policy Policy
}

func NewGate(log *logrus.Logger, policy Policy) Gate {
	return &gate{
		log:    log,
		policy: policy,
	}
}

func (g *gate) Authorize(ctx context.Context, actor *entity.Actor, action entity.Action, target entity.Target) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	if !g.policy.Allows(ctx, actor, action, target) {
		g.log.WithFields(logrus.Fields{
			"user_id":  actor.UserID,
			"role":     actor.Role(),
			"action":   action,
			"resource": target.Resource,
			"id":       target.ID,
		}).Info("Authorization denied")
		return ErrForbidden
	}

	return nil
}

// RolePolicy grants actions per role and resource.
type RolePolicy map[int]map[entity.Resource][]entity.Action

var (
	readOnly   = []entity.Action{entity.ActionViewAny, entity.ActionView}
	readWrite  = []entity.Action{entity.ActionViewAny, entity.ActionView, entity.ActionCreate, entity.ActionUpdate}
	allActions = []entity.Action{entity.ActionViewAny, entity.ActionView, entity.ActionCreate, entity.ActionUpdate, entity.ActionDelete}
)

// DefaultRolePolicy is the surgery's staff permission table. Patients use the
// portal and have no access to this API.
func DefaultRolePolicy() RolePolicy {
	return RolePolicy{
		entity.RoleIDAdmin: {
			entity.ResourcePatients:       allActions,
			entity.ResourceDoctors:        allActions,
			entity.ResourceAppointments:   allActions,
			entity.ResourceMedicalRecords: allActions,
			entity.ResourceAuditLogs:      readOnly,
		},
		entity.RoleIDDoctor: {
			entity.ResourcePatients:       readWrite,
			entity.ResourceDoctors:        readOnly,
			entity.ResourceAppointments:   readWrite,
			entity.ResourceMedicalRecords: readWrite,
		},
		entity.RoleIDReceptionist: {
			entity.ResourcePatients:     allActions,
			entity.ResourceDoctors:      readOnly,
			entity.ResourceAppointments: allActions,
		},
	}
}

func (p RolePolicy) Allows(_ context.Context, actor *entity.Actor, action entity.Action, target entity.Target) bool {
	return slices.Contains(p[actor.RoleID][target.Resource], action)
}
