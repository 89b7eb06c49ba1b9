package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Goal string `json:"goal" validate:"required"`
}

type UpdateSessionRequest struct {
	Id                  uuid.UUID
	Goal                *string                `json:"goal"`
	Status              *string                `json:"status"`
	SelectedCandidateId *uuid.UUID             `json:"selected_candidate_id"`
	Meta                map[string]interface{} `json:"meta"`
}

type SessionResponse struct {
	Id                  uuid.UUID              `json:"id"`
	Goal                string                 `json:"goal"`
	Status              string                 `json:"status"`
	SelectedCandidateId *uuid.UUID             `json:"selected_candidate_id,omitempty"`
	Meta                map[string]interface{} `json:"meta,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           *time.Time             `json:"updated_at"`
}

type CreateCandidateRequest struct {
	SessionId        uuid.UUID              `json:"session_id" validate:"required"`
	Name             string                 `json:"name" validate:"required"`
	Summary          string                 `json:"summary"`
	Pros             string                 `json:"pros"`
	Cons             string                 `json:"cons"`
	DemandLevel      string                 `json:"demand_level"`
	CompetitionLevel string                 `json:"competition_level"`
	PriceRange       string                 `json:"price_range"`
	Score            *float64               `json:"score"`
	Meta             map[string]interface{} `json:"meta"`
}

type UpdateCandidateRequest struct {
	Id               uuid.UUID
	Name             *string                `json:"name"`
	Summary          *string                `json:"summary"`
	Pros             *string                `json:"pros"`
	Cons             *string                `json:"cons"`
	DemandLevel      *string                `json:"demand_level"`
	CompetitionLevel *string                `json:"competition_level"`
	PriceRange       *string                `json:"price_range"`
	Score            *float64               `json:"score"`
	Meta             map[string]interface{} `json:"meta"`
}

type CandidateResponse struct {
	Id               uuid.UUID              `json:"id"`
	SessionId        uuid.UUID              `json:"session_id"`
	Name             string                 `json:"name"`
	Summary          string                 `json:"summary"`
	Pros             string                 `json:"pros,omitempty"`
	Cons             string                 `json:"cons,omitempty"`
	DemandLevel      string                 `json:"demand_level"`
	CompetitionLevel string                 `json:"competition_level"`
	PriceRange       string                 `json:"price_range"`
	Score            *float64               `json:"score,omitempty"`
	Meta             map[string]interface{} `json:"meta,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

type CreateSupplierRequest struct {
	SessionId   uuid.UUID              `json:"session_id" validate:"required"`
	CandidateId *uuid.UUID             `json:"candidate_id"`
	Name        string                 `json:"name" validate:"required"`
	Website     string                 `json:"website"`
	Contact     string                 `json:"contact"`
	PriceRange  string                 `json:"price_range"`
	Notes       string                 `json:"notes"`
	Meta        map[string]interface{} `json:"meta"`
}

type SupplierResponse struct {
	Id          uuid.UUID              `json:"id"`
	SessionId   uuid.UUID              `json:"session_id"`
	CandidateId *uuid.UUID             `json:"candidate_id,omitempty"`
	Name        string                 `json:"name"`
	Website     string                 `json:"website,omitempty"`
	Contact     string                 `json:"contact,omitempty"`
	PriceRange  string                 `json:"price_range,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

type CreateSourceRequest struct {
	SessionId uuid.UUID              `json:"session_id" validate:"required"`
	Kind      string                 `json:"kind" validate:"required"`
	Url       string                 `json:"url"`
	Title     string                 `json:"title"`
	Summary   string                 `json:"summary"`
	Data      map[string]interface{} `json:"data"`
}

type SourceResponse struct {
	Id        uuid.UUID              `json:"id"`
	SessionId uuid.UUID              `json:"session_id"`
	Kind      string                 `json:"kind"`
	Url       string                 `json:"url"`
	Title     string                 `json:"title"`
	Summary   string                 `json:"summary,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type CreateAssetRequest struct {
	SessionId   uuid.UUID              `json:"session_id" validate:"required"`
	CandidateId *uuid.UUID             `json:"candidate_id"`
	AssetType   string                 `json:"asset_type" validate:"required"`
	Content     map[string]interface{} `json:"content"`
}

type AssetResponse struct {
	Id          uuid.UUID              `json:"id"`
	SessionId   uuid.UUID              `json:"session_id"`
	CandidateId *uuid.UUID             `json:"candidate_id,omitempty"`
	AssetType   string                 `json:"asset_type"`
	Content     map[string]interface{} `json:"content,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
