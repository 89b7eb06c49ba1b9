package model

import (
	"time"

	"github.com/google/uuid"
)

type AgentDefinition struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgentKey      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	DefaultPrompt string    `gorm:"type:text;not null"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (AgentDefinition) TableName() string {
	return "agent_definitions"
}
