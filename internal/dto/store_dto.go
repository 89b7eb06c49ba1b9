package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStoreRequest struct {
	Name        string                 `json:"name" validate:"required"`
	SessionId   *uuid.UUID             `json:"session_id"`
	Description string                 `json:"description"`
	Status      string                 `json:"status"`
	Meta        map[string]interface{} `json:"meta"`
}

type UpdateStoreRequest struct {
	Id          uuid.UUID
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Status      *string                `json:"status"`
	Meta        map[string]interface{} `json:"meta"`
}

type StoreResponse struct {
	Id          uuid.UUID              `json:"id"`
	SessionId   *uuid.UUID             `json:"session_id,omitempty"`
	Name        string                 `json:"name"`
	Slug        string                 `json:"slug"`
	Description string                 `json:"description,omitempty"`
	Status      string                 `json:"status"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at"`
}
