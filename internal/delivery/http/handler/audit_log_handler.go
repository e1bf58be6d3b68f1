package handler

import (
	"net/http"
	"strconv"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/usecase"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	log             *logrus.Logger
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, log *logrus.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		log:             log,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), actor, auditLogID)
	if err != nil {
		writeError(w, h.log, err, usecase.ErrAuditLogNotFound, "Audit log not found", "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.GetActorFromContext(r.Context())

	page, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), actor, pageParam(r))
	if err != nil {
		writeError(w, h.log, err, nil, "", "Failed to get audit logs")
		return
	}

	writePage(w, "Audit logs retrieved successfully", page)
}
