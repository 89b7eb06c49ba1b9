package entity

import (
	"time"

	"github.com/google/uuid"
)

type ResearchSession struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	Goal                string
	Status              string
	SelectedCandidateId *uuid.UUID
	Meta                map[string]interface{}
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

type ProductCandidate struct {
	Id               uuid.UUID
	SessionId        uuid.UUID
	Name             string
	Summary          string
	Pros             string
	Cons             string
	DemandLevel      string
	CompetitionLevel string
	PriceRange       string
	Score            *float64
	Meta             map[string]interface{}
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type ProductSupplier struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	CandidateId *uuid.UUID
	Name        string
	Website     string
	Contact     string
	PriceRange  string
	Notes       string
	Meta        map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type ResearchSource struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Kind      string
	Url       string
	Title     string
	Summary   string
	Data      map[string]interface{}
	CreatedAt time.Time
}

type ProductAsset struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	CandidateId *uuid.UUID
	AssetType   string
	Content     map[string]interface{}
	CreatedAt   time.Time
}
