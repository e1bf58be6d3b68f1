package handler

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/sirupsen/logrus"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	log            *logrus.Logger
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		log:            log,
	}
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	page, err := h.patientUsecase.ListPatients(r.Context(), actor, pageParam(r))
	if err != nil {
		h.fail(w, err, "Failed to get patients")
		return
	}

	writePage(w, "Patients retrieved successfully", page)
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	if err := h.patientUsecase.Authorize(r.Context(), actor, entity.ActionCreate, 0); err != nil {
		h.fail(w, err, "Failed to create patient")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), actor, input)
	if err != nil {
		h.fail(w, err, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), actor, id)
	if err != nil {
		h.fail(w, err, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.Authorize(r.Context(), actor, entity.ActionUpdate, id); err != nil {
		h.fail(w, err, "Failed to update patient")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), actor, id, input)
	if err != nil {
		h.fail(w, err, "Failed to update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), actor, id); err != nil {
		h.fail(w, err, "Failed to delete patient")
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) fail(w http.ResponseWriter, err error, failure string) {
	writeError(w, h.log, err, usecase.ErrPatientNotFound, "Patient not found", failure)
}
