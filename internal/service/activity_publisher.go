package service

import (
	"context"
	"time"

	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/pkg/events"
)

// publishActivity reports a committed change. Delivery is best effort:
// failures are logged and never surface to the caller.
func publishActivity(ctx context.Context, publisher events.Publisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Warn("events", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
