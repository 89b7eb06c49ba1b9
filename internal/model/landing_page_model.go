package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LandingPage struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	SessionId *uuid.UUID        `gorm:"type:uuid;index"`
	StoreId   *uuid.UUID        `gorm:"type:uuid;index"`
	Title     string            `gorm:"type:varchar(255);not null"`
	Slug      string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status    string            `gorm:"type:varchar(32);not null;default:'draft'"`
	Content   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (LandingPage) TableName() string {
	return "landing_pages"
}
