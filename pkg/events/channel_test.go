package events

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelPublisherDeliversEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(ctx, "activity")
	require.NoError(t, err)

	occurred := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := NewChannelPublisher(pubSub, "activity")
	require.NoError(t, p.Publish(ctx, BaseEvent{
		Type:       NoteCreated,
		Data:       map[string]interface{}{"note_id": 3},
		OccurredAt: occurred,
	}))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, NoteCreated, msg.Metadata.Get("type"))

		envelope, err := DecodeEnvelope(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, msg.UUID, envelope.Id)
		assert.Equal(t, NoteCreated, envelope.Type)
		assert.True(t, occurred.Equal(envelope.OccurredAt))
		assert.EqualValues(t, 3, envelope.Data["note_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestNewEnvelopeStampsMissingTime(t *testing.T) {
	envelope := NewEnvelope(BaseEvent{Type: BoardDeleted})
	assert.False(t, envelope.OccurredAt.IsZero())
	assert.NotEmpty(t, envelope.Id)
}
