package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLandingRequest struct {
	Title     string                 `json:"title" validate:"required"`
	SessionId *uuid.UUID             `json:"session_id"`
	StoreId   *uuid.UUID             `json:"store_id"`
	Status    string                 `json:"status"`
	Content   map[string]interface{} `json:"content"`
}

type UpdateLandingRequest struct {
	Id      uuid.UUID
	Title   *string                `json:"title"`
	Status  *string                `json:"status"`
	Content map[string]interface{} `json:"content"`
}

type LandingResponse struct {
	Id        uuid.UUID              `json:"id"`
	SessionId *uuid.UUID             `json:"session_id,omitempty"`
	StoreId   *uuid.UUID             `json:"store_id,omitempty"`
	Title     string                 `json:"title"`
	Slug      string                 `json:"slug"`
	Status    string                 `json:"status"`
	Content   map[string]interface{} `json:"content,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}
