package dto

import "github.com/google/uuid"

// UserResponse describes the authenticated caller.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	RoleID int       `json:"role_id"`
	Role   string    `json:"role"`
}
