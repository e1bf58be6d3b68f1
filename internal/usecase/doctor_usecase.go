package usecase

import (
	"context"
	"errors"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
)

var ErrDoctorNotFound = errors.New("doctor not found")

var doctorRelations = []string{entity.RelationAppointments, entity.RelationMedicalRecords}

type DoctorUsecase interface {
	Authorizer
	ListDoctors(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.DoctorResponse], error)
	CreateDoctor(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, actor *entity.Actor, id uint) (*dto.DoctorResponse, error)
	UpdateDoctor(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, actor *entity.Actor, id uint) error
}

type doctorUsecase struct {
	resource
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(deps Deps, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		resource:   resource{Deps: deps, name: entity.ResourceDoctors, notFound: ErrDoctorNotFound},
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.DoctorResponse], error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionViewAny); err != nil {
		return nil, err
	}

	page, limit, offset := pageBounds(page)
	doctors, total, err := u.doctorRepo.FindAll(ctx, u.DB, limit, offset, doctorRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.Page[dto.DoctorResponse]{
		Items:   converter.DoctorsToResponses(doctors, doctorRelations...),
		Page:    page,
		PerPage: limit,
		Total:   total,
	}, nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.DoctorResponse, error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.DoctorCreateRules, input, 0)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{}
	converter.ApplyDoctorFields(doctor, fields)

	if err := u.doctorRepo.Create(ctx, u.DB, doctor); err != nil {
		u.Log.Warnf("Failed to create doctor: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.DoctorCreateRules, input, 0, dto.DoctorUniqueColumns)
	}

	u.audit(u.AuditService.LogCreate(ctx, u.DB, &actor.UserID, entity.AuditActionDoctorCreate, "doctor", doctor.ID, converter.DoctorToResponse(doctor)))

	return u.load(ctx, doctor.ID)
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, actor *entity.Actor, id uint) (*dto.DoctorResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionView, id); err != nil {
		return nil, err
	}

	return u.load(ctx, id)
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.DoctorResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionUpdate, id); err != nil {
		return nil, err
	}

	doctor, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.DoctorUpdateRules, input, id)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.DoctorToResponse(doctor)

	converter.ApplyDoctorFields(doctor, fields)
	if err := u.doctorRepo.Update(ctx, u.DB, doctor); err != nil {
		u.Log.Warnf("Failed to update doctor: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.DoctorUpdateRules, input, id, dto.DoctorUniqueColumns)
	}

	u.audit(u.AuditService.LogUpdate(ctx, u.DB, &actor.UserID, entity.AuditActionDoctorUpdate, "doctor", id, oldValue, converter.DoctorToResponse(doctor)))

	return u.load(ctx, id)
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, actor *entity.Actor, id uint) error {
	if err := u.authorizeInstance(ctx, actor, entity.ActionDelete, id); err != nil {
		return err
	}

	doctor, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	affected, err := u.doctorRepo.Delete(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	u.audit(u.AuditService.LogDelete(ctx, u.DB, &actor.UserID, entity.AuditActionDoctorDelete, "doctor", id, converter.DoctorToResponse(doctor)))

	return nil
}

func (u *doctorUsecase) find(ctx context.Context, id uint) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

func (u *doctorUsecase) load(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.DB, id, doctorRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor, doctorRelations...), nil
}
