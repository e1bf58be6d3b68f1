package handler

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	log           *logrus.Logger
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		log:           log,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	page, err := h.doctorUsecase.ListDoctors(r.Context(), actor, pageParam(r))
	if err != nil {
		h.fail(w, err, "Failed to get doctors")
		return
	}

	writePage(w, "Doctors retrieved successfully", page)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	if err := h.doctorUsecase.Authorize(r.Context(), actor, entity.ActionCreate, 0); err != nil {
		h.fail(w, err, "Failed to create doctor")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), actor, input)
	if err != nil {
		h.fail(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), actor, id)
	if err != nil {
		h.fail(w, err, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.Authorize(r.Context(), actor, entity.ActionUpdate, id); err != nil {
		h.fail(w, err, "Failed to update doctor")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), actor, id, input)
	if err != nil {
		h.fail(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), actor, id); err != nil {
		h.fail(w, err, "Failed to delete doctor")
		return
	}

	response.NoContent(w)
}

func (h *DoctorHandler) fail(w http.ResponseWriter, err error, failure string) {
	writeError(w, h.log, err, usecase.ErrDoctorNotFound, "Doctor not found", failure)
}
