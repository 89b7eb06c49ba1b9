package entity

import (
	"time"

	"github.com/google/uuid"
)

type LandingPage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId *uuid.UUID
	StoreId   *uuid.UUID
	Title     string
	Slug      string
	Status    string
	Content   map[string]interface{}
	CreatedAt time.Time
	UpdatedAt *time.Time
}
