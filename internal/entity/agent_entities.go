package entity

import (
	"time"

	"github.com/google/uuid"
)

type AgentDefinition struct {
	Id            uuid.UUID
	AgentKey      string
	Name          string
	Description   string
	DefaultPrompt string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type AgentPrompt struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	AgentKey     string
	CustomPrompt string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type UserRole struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	Email     string
	Role      string
	CreatedAt time.Time
}
