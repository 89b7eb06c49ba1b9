package service

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/pkg/logger"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IActivityConsumer drains the activity topic into the activity_logs table.
type IActivityConsumer interface {
	Run(ctx context.Context) error
}

type activityConsumer struct {
	subscriber message.Subscriber
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewActivityConsumer(subscriber message.Subscriber, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IActivityConsumer {
	return &activityConsumer{
		subscriber: subscriber,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (c *activityConsumer) Run(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, events.TopicActivity)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.handle(ctx, msg)
			msg.Ack()
		}
	}()
	return nil
}

func (c *activityConsumer) handle(ctx context.Context, msg *message.Message) {
	event, err := events.ParseMessage(msg)
	if err != nil {
		c.logger.Warn("activity", "Dropping malformed activity event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	log := entity.ActivityLog{
		UserId:     event.UserId,
		Kind:       event.Kind,
		SubjectId:  event.SubjectId,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt,
	}
	if err := uow.ActivityLogRepository().Create(ctx, &log); err != nil {
		c.logger.Error("activity", "Failed to persist activity event", map[string]interface{}{
			"error": err.Error(),
			"kind":  event.Kind,
		})
	}
}
