package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Store struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID         `gorm:"type:uuid;not null;index"`
	SessionId   *uuid.UUID        `gorm:"type:uuid;index"`
	Name        string            `gorm:"type:varchar(255);not null"`
	Slug        string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string            `gorm:"type:text"`
	Status      string            `gorm:"type:varchar(32);not null;default:'draft'"`
	Meta        datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (Store) TableName() string {
	return "stores"
}
