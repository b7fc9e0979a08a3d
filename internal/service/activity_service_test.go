package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bulletin-board-be/internal/service"
	"bulletin-board-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level   string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", message, details)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", message, details)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", message, details)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", message, details)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

func TestActivityServiceWritesEventsToLog(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	activityLog := &recordingLogger{}
	require.NoError(t, service.NewActivityService(events.NewChannelSource(pubSub, "activity"), activityLog).Consume(ctx))

	publisher := events.NewChannelPublisher(pubSub, "activity")
	require.NoError(t, publisher.Publish(ctx, events.BaseEvent{
		Type: events.BoardRenamed,
		Data: map[string]interface{}{"board_id": 4, "name": "Plans"},
	}))
	require.NoError(t, pubSub.Publish("activity", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	require.Eventually(t, func() bool {
		return len(activityLog.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// Delivery order across publishes is not guaranteed.
	levels := map[string]logEntry{}
	for _, e := range activityLog.snapshot() {
		levels[e.level] = e
	}
	require.Contains(t, levels, "info")
	require.Contains(t, levels, "error")
	assert.Equal(t, events.BoardRenamed, levels["info"].message)
	assert.EqualValues(t, 4, levels["info"].details["data"].(map[string]interface{})["board_id"])
}

func TestActivityServiceWithoutSubscriberIsNoop(t *testing.T) {
	assert.NoError(t, service.NewActivityService(nil, nil).Consume(context.Background()))
}
