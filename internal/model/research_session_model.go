package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResearchSession struct {
	Id                  uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID         `gorm:"type:uuid;not null;index"`
	Goal                string            `gorm:"type:text"`
	Status              string            `gorm:"type:varchar(32);not null;default:'draft'"`
	SelectedCandidateId *uuid.UUID        `gorm:"type:uuid"`
	Meta                datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt           time.Time         `gorm:"autoCreateTime"`
	UpdatedAt           time.Time         `gorm:"autoUpdateTime"`
}

func (ResearchSession) TableName() string {
	return "research_sessions"
}
