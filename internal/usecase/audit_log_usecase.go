package usecase

import (
	"context"
	"errors"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.AuditLogResponse], error)
	GetAuditLog(ctx context.Context, actor *entity.Actor, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	gate         service.Gate
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	gate service.Gate,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		gate:         gate,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.AuditLogResponse], error) {
	if err := u.gate.Authorize(ctx, actor, entity.ActionViewAny, entity.ClassOf(entity.ResourceAuditLogs)); err != nil {
		return nil, err
	}

	page, limit, offset := pageBounds(page)
	logs, total, err := u.auditLogRepo.FindAll(ctx, u.db, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.Page[dto.AuditLogResponse]{
		Items:   converter.AuditLogsToResponses(logs),
		Page:    page,
		PerPage: limit,
		Total:   total,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, actor *entity.Actor, id int64) (*dto.AuditLogResponse, error) {
	if err := u.gate.Authorize(ctx, actor, entity.ActionView, entity.ClassOf(entity.ResourceAuditLogs)); err != nil {
		return nil, err
	}

	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
