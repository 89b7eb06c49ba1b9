package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductCandidate struct {
	Id               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId        uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name             string            `gorm:"type:varchar(255);not null"`
	Summary          string            `gorm:"type:text"`
	Pros             string            `gorm:"type:text"`
	Cons             string            `gorm:"type:text"`
	DemandLevel      string            `gorm:"type:varchar(64)"`
	CompetitionLevel string            `gorm:"type:varchar(64)"`
	PriceRange       string            `gorm:"type:varchar(128)"`
	Score            *float64          `gorm:"type:numeric"`
	Meta             datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt        time.Time         `gorm:"autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime"`
}

func (ProductCandidate) TableName() string {
	return "product_candidates"
}
