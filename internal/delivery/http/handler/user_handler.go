package handler

import (
	"net/http"

	"github.com/codingwithstephen/gp-surgery-mobile/internal/converter"
	"github.com/codingwithstephen/gp-surgery-mobile/internal/delivery/http/middleware"
	"github.com/codingwithstephen/gp-surgery-mobile/pkg/response"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GetCurrentUser returns the identity carried by the access token.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", converter.ActorToResponse(actor))
}
