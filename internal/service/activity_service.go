package service

import (
	"context"

	"bulletin-board-be/internal/pkg/logger"
	"bulletin-board-be/pkg/events"
)

type IActivityService interface {
	Consume(ctx context.Context) error
}

// activityService drains published events into the activity log.
type activityService struct {
	source      events.Source
	activityLog logger.ILogger
}

func NewActivityService(source events.Source, activityLog logger.ILogger) IActivityService {
	return &activityService{
		source:      source,
		activityLog: activityLog,
	}
}

// Consume starts listening and returns; events are handled in the
// background until ctx is cancelled. Without a source it does nothing.
func (s *activityService) Consume(ctx context.Context) error {
	if s.source == nil {
		return nil
	}
	return s.source.Listen(ctx, s.handle)
}

// handle never fails: a payload that cannot be decoded will not decode on
// redelivery either.
func (s *activityService) handle(ctx context.Context, payload []byte) error {
	envelope, err := events.DecodeEnvelope(payload)
	if err != nil {
		s.activityLog.Error("activity", "failed to decode event", map[string]interface{}{
			"payload": string(payload),
			"error":   err,
		})
		return nil
	}

	s.activityLog.Info("activity", envelope.Type, map[string]interface{}{
		"event_id":    envelope.Id,
		"occurred_at": envelope.OccurredAt,
		"data":        envelope.Data,
	})
	return nil
}
