package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductSupplier struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   uuid.UUID         `gorm:"type:uuid;not null;index"`
	CandidateId *uuid.UUID        `gorm:"type:uuid;index"`
	Name        string            `gorm:"type:varchar(255);not null"`
	Website     string            `gorm:"type:text"`
	Contact     string            `gorm:"type:text"`
	PriceRange  string            `gorm:"type:varchar(128)"`
	Notes       string            `gorm:"type:text"`
	Meta        datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (ProductSupplier) TableName() string {
	return "product_suppliers"
}
