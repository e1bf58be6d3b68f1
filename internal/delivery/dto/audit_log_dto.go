package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogResponse struct {
	ID        int64             `json:"id"`
	UserID    *uuid.UUID        `json:"user_id"`
	Action    string            `json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt string            `json:"created_at"`
}
