package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductAsset struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   uuid.UUID         `gorm:"type:uuid;not null;index"`
	CandidateId *uuid.UUID        `gorm:"type:uuid;index"`
	AssetType   string            `gorm:"type:varchar(64);not null;index"`
	Content     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

func (ProductAsset) TableName() string {
	return "product_assets"
}
