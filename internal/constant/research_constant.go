package constant

// Research session lifecycle. Status moves forward through the chat flow but
// nothing enforces a strict progression; CRUD updates can set any value.
const (
	SessionStatusDraft       = "draft"
	SessionStatusResearching = "researching"
	SessionStatusProposed    = "proposed"
	SessionStatusSelected    = "selected"
	SessionStatusCompleted   = "completed"
)

// Asset types stored in product_assets. Draft types are staging slots for the
// confirm flow; the rest are generated artifacts.
const (
	AssetTypeStoreDraft   = "store_draft"
	AssetTypeLandingDraft = "landing_draft"
	AssetTypeCopy         = "copy"
	AssetTypeLanding      = "landing"
	AssetTypeMedia        = "media"
)

const (
	StoreStatusDraft    = "draft"
	StoreStatusActive   = "active"
	LandingStatusDraft  = "draft"
	LandingStatusLive   = "published"
	RoleAdmin           = "admin"
	ChatMessageRoleUser = "user"
)
