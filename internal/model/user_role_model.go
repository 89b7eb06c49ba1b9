package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Email     string     `gorm:"type:varchar(255);index"`
	Role      string     `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
