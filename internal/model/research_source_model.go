package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ResearchSource struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Kind      string            `gorm:"type:varchar(64);not null"`
	Url       string            `gorm:"type:text"`
	Title     string            `gorm:"type:text"`
	Summary   string            `gorm:"type:text"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (ResearchSource) TableName() string {
	return "research_sources"
}
