package workflow

import "regexp"

// Action is the store/landing draft-or-confirm command detected in free text.
// ActionNone means the message falls through to intent classification.
type Action string

const (
	ActionNone           Action = "NONE"
	ActionStoreDraft     Action = "STORE_DRAFT"
	ActionStoreConfirm   Action = "STORE_CONFIRM"
	ActionLandingDraft   Action = "LANDING_DRAFT"
	ActionLandingConfirm Action = "LANDING_CONFIRM"
)

var (
	storeDraftPattern   = regexp.MustCompile(`(?i)(crear|armar|generar)\s+(tienda|store)`)
	landingDraftPattern = regexp.MustCompile(`(?i)(crear|armar|generar)\s+landing`)
	confirmPattern      = regexp.MustCompile(`(?i)(confirmo|confirmar|aprobado|dale|si\s*,?\s*crea)`)
	storePattern        = regexp.MustCompile(`(?i)tienda|store`)
	landingPattern      = regexp.MustCompile(`(?i)landing`)
)

// Detect checks the four patterns in fixed order: store draft, store confirm,
// landing draft, landing confirm. The first match wins. Note the draft
// pattern shadows confirmation phrases that repeat the verb ("confirmo crear
// tienda" re-drafts); confirming works with phrases like "confirmo tienda".
func Detect(message string) Action {
	switch {
	case storeDraftPattern.MatchString(message):
		return ActionStoreDraft
	case confirmPattern.MatchString(message) && storePattern.MatchString(message):
		return ActionStoreConfirm
	case landingDraftPattern.MatchString(message):
		return ActionLandingDraft
	case confirmPattern.MatchString(message) && landingPattern.MatchString(message):
		return ActionLandingConfirm
	default:
		return ActionNone
	}
}
