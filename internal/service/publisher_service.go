package service

import (
	"context"

	"ecomia-be/internal/pkg/logger"
	"ecomia-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IActivityPublisher fans session and asset lifecycle events onto the
// in-process bus. Publishing is best-effort: a full bus never blocks the
// request path.
type IActivityPublisher interface {
	Publish(ctx context.Context, event *events.ActivityEvent)
}

type activityPublisher struct {
	publisher message.Publisher
	logger    logger.ILogger
}

func NewActivityPublisher(publisher message.Publisher, log logger.ILogger) IActivityPublisher {
	return &activityPublisher{
		publisher: publisher,
		logger:    log,
	}
}

func (p *activityPublisher) Publish(ctx context.Context, event *events.ActivityEvent) {
	msg, err := events.NewMessage(event)
	if err != nil {
		p.logger.Warn("activity", "Failed to encode activity event", map[string]interface{}{
			"error": err.Error(),
			"kind":  event.Kind,
		})
		return
	}
	if err := p.publisher.Publish(events.TopicActivity, msg); err != nil {
		p.logger.Warn("activity", "Failed to publish activity event", map[string]interface{}{
			"error": err.Error(),
			"kind":  event.Kind,
		})
	}
}
