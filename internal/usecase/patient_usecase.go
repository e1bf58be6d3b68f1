package usecase

import (
	"context"
	"errors"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
)

var ErrPatientNotFound = errors.New("patient not found")

var patientRelations = []string{entity.RelationAppointments, entity.RelationMedicalRecords}

type PatientUsecase interface {
	Authorizer
	ListPatients(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.PatientResponse], error)
	CreatePatient(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, actor *entity.Actor, id uint) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, actor *entity.Actor, id uint) error
}

type patientUsecase struct {
	resource
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(deps Deps, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		resource:    resource{Deps: deps, name: entity.ResourcePatients, notFound: ErrPatientNotFound},
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.PatientResponse], error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionViewAny); err != nil {
		return nil, err
	}

	page, limit, offset := pageBounds(page)
	patients, total, err := u.patientRepo.FindAll(ctx, u.DB, limit, offset, patientRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.Page[dto.PatientResponse]{
		Items:   converter.PatientsToResponses(patients, patientRelations...),
		Page:    page,
		PerPage: limit,
		Total:   total,
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.PatientResponse, error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.PatientCreateRules, input, 0)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{}
	converter.ApplyPatientFields(patient, fields)

	if err := u.patientRepo.Create(ctx, u.DB, patient); err != nil {
		u.Log.Warnf("Failed to create patient: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.PatientCreateRules, input, 0, dto.PatientUniqueColumns)
	}

	u.audit(u.AuditService.LogCreate(ctx, u.DB, &actor.UserID, entity.AuditActionPatientCreate, "patient", patient.ID, converter.PatientToResponse(patient)))

	return u.load(ctx, patient.ID)
}

func (u *patientUsecase) GetPatient(ctx context.Context, actor *entity.Actor, id uint) (*dto.PatientResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionView, id); err != nil {
		return nil, err
	}

	return u.load(ctx, id)
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.PatientResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionUpdate, id); err != nil {
		return nil, err
	}

	patient, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.PatientUpdateRules, input, id)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.PatientToResponse(patient)

	converter.ApplyPatientFields(patient, fields)
	if err := u.patientRepo.Update(ctx, u.DB, patient); err != nil {
		u.Log.Warnf("Failed to update patient: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.PatientUpdateRules, input, id, dto.PatientUniqueColumns)
	}

	u.audit(u.AuditService.LogUpdate(ctx, u.DB, &actor.UserID, entity.AuditActionPatientUpdate, "patient", id, oldValue, converter.PatientToResponse(patient)))

	return u.load(ctx, id)
}

func (u *patientUsecase) DeletePatient(ctx context.Context, actor *entity.Actor, id uint) error {
	if err := u.authorizeInstance(ctx, actor, entity.ActionDelete, id); err != nil {
		return err
	}

	patient, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	u.audit(u.AuditService.LogDelete(ctx, u.DB, &actor.UserID, entity.AuditActionPatientDelete, "patient", id, converter.PatientToResponse(patient)))

	return nil
}

func (u *patientUsecase) find(ctx context.Context, id uint) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *patientUsecase) load(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.DB, id, patientRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient, patientRelations...), nil
}
