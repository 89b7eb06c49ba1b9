package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Kind       string            `gorm:"type:varchar(64);not null;index"`
	SubjectId  uuid.UUID         `gorm:"type:uuid"`
	Detail     datatypes.JSONMap `gorm:"type:jsonb"`
	OccurredAt time.Time         `gorm:"not null"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
