package entity

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	SessionId   *uuid.UUID
	Name        string
	Slug        string
	Description string
	Status      string
	Meta        map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
