package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy filters rows with a user_id column
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// BySessionID filters research artifacts by their parent session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// SessionOwnedBy restricts session-scoped artifacts to sessions owned by a
// user. Used on tables that carry session_id but no user_id of their own.
type SessionOwnedBy struct {
	UserID uuid.UUID
}

func (s SessionOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id IN (SELECT id FROM research_sessions WHERE user_id = ?)", s.UserID)
}

// ByCandidateID filters suppliers by their parent candidate
type ByCandidateID struct {
	CandidateID uuid.UUID
}

func (s ByCandidateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ?", s.CandidateID)
}

// ByStatus filters by a status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// NotStatus excludes a status value
type NotStatus struct {
	Status string
}

func (s NotStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status <> ?", s.Status)
}

// ByAssetType filters product assets by asset_type
type ByAssetType struct {
	AssetType string
}

func (s ByAssetType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("asset_type = ?", s.AssetType)
}

// BySlug filters stores or landing pages by slug
type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

// ByAgentKey filters agent definitions and prompt overrides
type ByAgentKey struct {
	AgentKey string
}

func (s ByAgentKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("agent_key = ?", s.AgentKey)
}

// ActiveOnly keeps rows whose active flag is set
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// ByEmail filters by an email column
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// RoleMatch matches user_roles rows by user id or email
type RoleMatch struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

func (s RoleMatch) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ? AND (user_id = ? OR email = ?)", s.Role, s.UserID, s.Email)
}
