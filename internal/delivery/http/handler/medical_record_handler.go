package handler

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/domain/entity"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/sirupsen/logrus"
)

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
	log                  *logrus.Logger
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase, log *logrus.Logger) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
		log:                  log,
	}
}

func (h *MedicalRecordHandler) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	page, err := h.medicalRecordUsecase.ListMedicalRecords(r.Context(), actor, pageParam(r))
	if err != nil {
		h.fail(w, err, "Failed to get medical records")
		return
	}

	writePage(w, "Medical records retrieved successfully", page)
}

func (h *MedicalRecordHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	if err := h.medicalRecordUsecase.Authorize(r.Context(), actor, entity.ActionCreate, 0); err != nil {
		h.fail(w, err, "Failed to create medical record")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	medicalRecord, err := h.medicalRecordUsecase.CreateMedicalRecord(r.Context(), actor, input)
	if err != nil {
		h.fail(w, err, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", medicalRecord)
}

func (h *MedicalRecordHandler) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	medicalRecord, err := h.medicalRecordUsecase.GetMedicalRecord(r.Context(), actor, id)
	if err != nil {
		h.fail(w, err, "Failed to get medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", medicalRecord)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	if err := h.medicalRecordUsecase.Authorize(r.Context(), actor, entity.ActionUpdate, id); err != nil {
		h.fail(w, err, "Failed to update medical record")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	medicalRecord, err := h.medicalRecordUsecase.UpdateMedicalRecord(r.Context(), actor, id, input)
	if err != nil {
		h.fail(w, err, "Failed to update medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", medicalRecord)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid medical record ID")
		return
	}

	if err := h.medicalRecordUsecase.DeleteMedicalRecord(r.Context(), actor, id); err != nil {
		h.fail(w, err, "Failed to delete medical record")
		return
	}

	response.NoContent(w)
}

func (h *MedicalRecordHandler) fail(w http.ResponseWriter, err error, failure string) {
	writeError(w, h.log, err, usecase.ErrMedicalRecordNotFound, "Medical record not found", failure)
}
