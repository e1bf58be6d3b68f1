package usecase

import (
	"context"
	"errors"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/dto"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/repository"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

var (
	appointmentRelations       = []string{entity.RelationPatient, entity.RelationDoctor}
	appointmentDetailRelations = []string{entity.RelationPatient, entity.RelationDoctor, entity.RelationMedicalRecord}
)

type AppointmentUsecase interface {
	Authorizer
	ListAppointments(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.AppointmentResponse], error)
	CreateAppointment(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, actor *entity.Actor, id uint) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, actor *entity.Actor, id uint) error
}

type appointmentUsecase struct {
	resource
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(deps Deps, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		resource:        resource{Deps: deps, name: entity.ResourceAppointments, notFound: ErrAppointmentNotFound},
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, actor *entity.Actor, page int) (*dto.Page[dto.AppointmentResponse], error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionViewAny); err != nil {
		return nil, err
	}

	page, limit, offset := pageBounds(page)
	appointments, total, err := u.appointmentRepo.FindAll(ctx, u.DB, limit, offset, appointmentRelations...)
	if err != nil {
		u.Log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.Page[dto.AppointmentResponse]{
		Items:   converter.AppointmentsToResponses(appointments, appointmentRelations...),
		Page:    page,
		PerPage: limit,
		Total:   total,
	}, nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actor *entity.Actor, input map[string]any) (*dto.AppointmentResponse, error) {
	if err := u.authorizeClass(ctx, actor, entity.ActionCreate); err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.AppointmentCreateRules, input, 0)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DurationMinutes: entity.DefaultAppointmentDuration,
		Status:          entity.AppointmentStatusScheduled,
	}
	converter.ApplyAppointmentFields(appointment, fields)

	if err := u.appointmentRepo.Create(ctx, u.DB, appointment); err != nil {
		u.Log.Warnf("Failed to create appointment: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.AppointmentCreateRules, input, 0, nil)
	}

	u.audit(u.AuditService.LogCreate(ctx, u.DB, &actor.UserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID, converter.AppointmentToResponse(appointment)))

	return u.load(ctx, appointment.ID, appointmentRelations)
}

// GetAppointment also renders the medical record written for the appointment.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, actor *entity.Actor, id uint) (*dto.AppointmentResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionView, id); err != nil {
		return nil, err
	}

	return u.load(ctx, id, appointmentDetailRelations)
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, actor *entity.Actor, id uint, input map[string]any) (*dto.AppointmentResponse, error) {
	if err := u.authorizeInstance(ctx, actor, entity.ActionUpdate, id); err != nil {
		return nil, err
	}

	appointment, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields, err := u.validate(ctx, dto.AppointmentUpdateRules, input, id)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.AppointmentToResponse(appointment)

	converter.ApplyAppointmentFields(appointment, fields)
	if err := u.appointmentRepo.Update(ctx, u.DB, appointment); err != nil {
		u.Log.Warnf("Failed to update appointment: %+v", err)
		return nil, u.writeConflict(ctx, err, dto.AppointmentUpdateRules, input, id, nil)
	}

	u.audit(u.AuditService.LogUpdate(ctx, u.DB, &actor.UserID, entity.AuditActionAppointmentUpdate, "appointment", id, oldValue, converter.AppointmentToResponse(appointment)))

	return u.load(ctx, id, appointmentRelations)
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, actor *entity.Actor, id uint) error {
	if err := u.authorizeInstance(ctx, actor, entity.ActionDelete, id); err != nil {
		return err
	}

	appointment, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	affected, err := u.appointmentRepo.Delete(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.audit(u.AuditService.LogDelete(ctx, u.DB, &actor.UserID, entity.AuditActionAppointmentDelete, "appointment", id, converter.AppointmentToResponse(appointment)))

	return nil
}

func (u *appointmentUsecase) find(ctx context.Context, id uint) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.DB, id)
	if err != nil {
		u.Log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) load(ctx context.Context, id uint, relations []string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.DB, id, relations...)
	if err != nil {
		u.Log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment, relations...), nil
}
