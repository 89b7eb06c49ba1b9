package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Kind       string
	SubjectId  uuid.UUID
	Detail     map[string]interface{}
	OccurredAt time.Time
	CreatedAt  time.Time
}
