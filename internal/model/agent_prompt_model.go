package model

import (
	"time"

	"github.com/google/uuid"
)

type AgentPrompt struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_agent_prompts_user_key"`
	AgentKey     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_agent_prompts_user_key"`
	CustomPrompt string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AgentPrompt) TableName() string {
	return "agent_prompts"
}
