package handler

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/sirupsen/logrus"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	log                *logrus.Logger
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		log:                log,
	}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	page, err := h.appointmentUsecase.ListAppointments(r.Context(), actor, pageParam(r))
	if err != nil {
		h.fail(w, err, "Failed to get appointments")
		return
	}

	writePage(w, "Appointments retrieved successfully", page)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	if err := h.appointmentUsecase.Authorize(r.Context(), actor, entity.ActionCreate, 0); err != nil {
		h.fail(w, err, "Failed to create appointment")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), actor, input)
	if err != nil {
		h.fail(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), actor, id)
	if err != nil {
		h.fail(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Authorize(r.Context(), actor, entity.ActionUpdate, id); err != nil {
		h.fail(w, err, "Failed to update appointment")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), actor, id, input)
	if err != nil {
		h.fail(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), actor, id); err != nil {
		h.fail(w, err, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}

func (h *AppointmentHandler) fail(w http.ResponseWriter, err error, failure string) {
	writeError(w, h.log, err, usecase.ErrAppointmentNotFound, "Appointment not found", failure)
}
