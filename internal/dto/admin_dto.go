package dto

import (
	"time"

	"github.com/google/uuid"
)

type AgentDefinitionResponse struct {
	AgentKey      string `json:"agent_key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefaultPrompt string `json:"default_prompt"`
	Active        bool   `json:"active"`
	CustomPrompt  string `json:"custom_prompt,omitempty"`
}

type UpsertAgentPromptRequest struct {
	AgentKey     string `json:"agent_key" validate:"required"`
	CustomPrompt string `json:"custom_prompt" validate:"required"`
}

type UpsertAgentDefinitionRequest struct {
	AgentKey      string `json:"agent_key" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	DefaultPrompt string `json:"default_prompt"`
	Active        *bool  `json:"active"`
}

type CreateUserRoleRequest struct {
	UserId *uuid.UUID `json:"user_id"`
	Email  string     `json:"email"`
	Role   string     `json:"role" validate:"required"`
}

type UserRoleResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    *uuid.UUID `json:"user_id,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
}

type ActivityLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	Kind       string                 `json:"kind"`
	SubjectId  uuid.UUID              `json:"subject_id"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}
