package usecase

import (
	"context"
	"errors"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
)

var ErrMedicalRecordNotFound = errors.New("medical record not found")

var medicalRecordRelations = []string{entity.RelationPatient, entity.RelationDoctor, entity.RelationAppointment}

type MedicalRecordUsecase interface {
	Authorizer
	ListMedicalRecords(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.MedicalRecordResponse], error)
	CreateMedicalRecord(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.MedicalRecordResponse, error)
	GetMedicalRecord(ctx context.Context, actor *entity.Actor, id uint) (*dto.MedicalRecordResponse, error)
	UpdateMedicalRecord(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.MedicalRecordResponse, error)
	DeleteMedicalRecord(ctx context.Context, actor *entity.Actor, id uint) error
}

type medicalRecordUsecase struct {
	resource
	medicalRecordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(deps Deps, medicalRecordRepo repository.MedicalRecordRepository) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		resource:          resource{Deps: deps, name: entity.ResourceMedicalRecords, notFound: ErrMedicalRecordNotFound},
		medicalRecordRepo: medicalRecordRepo,
	}
}

func (u *medicalRecordUsecase) ListMedicalRecords(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.MedicalRecordResponse], error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionViewAny); err != nil {
		return nil, err
	}

	page, limit, offset := pageBounds(page)
	records, total, err := u.medicalRecordRepo.FindAll(ctx, u.DB, limit, offset, medicalRecordRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find all medical records: %+v", err)
		return nil, err
	}

	return &dto.Page[dto.MedicalRecordResponse]{
		Items:   converter.MedicalRecordsToResponses(records, medicalRecordRelations...),
		Page:    page,
		PerPage: limit,
		Total:   total,
	}, nil
}

func (u *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.MedicalRecordResponse, error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.MedicalRecordCreateRules, input, 0)
	if err != nil {
		return nil, err
	}

	record := &entity.MedicalRecord{}
	converter.ApplyMedicalRecordFields(record, fields)

	if err := u.medicalRecordRepo.Create(ctx, u.DB, record); err != nil {
		u.Log.Warnf("Failed to create medical record: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.MedicalRecordCreateRules, input, 0, dto.MedicalRecordUniqueColumns)
	}

	u.audit(u.AuditService.LogCreate(ctx, u.DB, &actor.UserID, entity.AuditActionMedicalRecordCreate, "medical_record", record.ID, converter.MedicalRecordToResponse(record)))

	return u.load(ctx, record.ID)
}

func (u *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, actor *entity.Actor, id uint) (*dto.MedicalRecordResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionView, id); err != nil {
		return nil, err
	}

	return u.load(ctx, id)
}

func (u *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.MedicalRecordResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionUpdate, id); err != nil {
		return nil, err
	}

	record, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.MedicalRecordUpdateRules, input, id)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.MedicalRecordToResponse(record)

	converter.ApplyMedicalRecordFields(record, fields)
	if err := u.medicalRecordRepo.Update(ctx, u.DB, record); err != nil {
		u.Log.Warnf("Failed to update medical record: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.MedicalRecordUpdateRules, input, id, dto.MedicalRecordUniqueColumns)
	}

	u.audit(u.AuditService.LogUpdate(ctx, u.DB, &actor.UserID, entity.AuditActionMedicalRecordUpdate, "medical_record", id, oldValue, converter.MedicalRecordToResponse(record)))

	return u.load(ctx, id)
}

func (u *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, actor *entity.Actor, id uint) error {
	if err := u.authorizeInstance(ctx, actor, entity.ActionDelete, id); err != nil {
		return err
	}

	record, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	affected, err := u.medicalRecordRepo.Delete(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrMedicalRecordNotFound
	}

	u.audit(u.AuditService.LogDelete(ctx, u.DB, &actor.UserID, entity.AuditActionMedicalRecordDelete, "medical_record", id, converter.MedicalRecordToResponse(record)))

	return nil
}

func (u *medicalRecordUsecase) find(ctx context.Context, id uint) (*entity.MedicalRecord, error) {
	record, err := u.medicalRecordRepo.FindByID(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	return record, nil
}

func (u *medicalRecordUsecase) load(ctx context.Context, id uint) (*dto.MedicalRecordResponse, error) {
	record, err := u.medicalRecordRepo.FindByID(ctx, u.DB, id, medicalRecordRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	return converter.MedicalRecordToResponse(record, medicalRecordRelations...), nil
}
