package events

import (
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Topics for the in-process event bus. Consumers append to the activity log.
const (
	TopicActivity = "ecomia.activity"
)

// Activity event kinds.
const (
	KindSessionCreated   = "session.created"
	KindSessionProposed  = "session.proposed"
	KindSessionCompleted = "session.completed"
	KindStoreCreated     = "store.created"
	KindLandingCreated   = "landing.created"
	KindLandingPublished = "landing.published"
	KindAssetCreated     = "asset.created"
	KindCheckoutCreated  = "checkout.created"
	KindPaymentPending   = "payment.pending"
)

// ActivityEvent is the payload published on TopicActivity.
type ActivityEvent struct {
	Kind       string                 `json:"kind"`
	UserId     uuid.UUID              `json:"user_id"`
	SubjectId  uuid.UUID              `json:"subject_id"`
	Detail     map[string]interface{} `json:"detail,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// NewMessage wraps the event as a watermill message with a fresh UUID.
func NewMessage(event *ActivityEvent) (*message.Message, error) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return message.NewMessage(uuid.NewString(), payload), nil
}

// ParseMessage decodes a watermill message back into an ActivityEvent.
func ParseMessage(msg *message.Message) (*ActivityEvent, error) {
	var event ActivityEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
