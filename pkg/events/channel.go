package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ChannelPublisher puts events on an in-process watermill topic.
type ChannelPublisher struct {
	publisher message.Publisher
	topic     string
}

var _ Publisher = &ChannelPublisher{}

func NewChannelPublisher(publisher message.Publisher, topic string) *ChannelPublisher {
	return &ChannelPublisher{publisher: publisher, topic: topic}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event Event) error {
	envelope := NewEnvelope(event)
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", envelope.Type, err)
	}

	msg := message.NewMessage(envelope.Id, data)
	msg.SetContext(ctx)
	msg.Metadata.Set("type", envelope.Type)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", p.topic, err)
	}
	return nil
}

// DecodeEnvelope reads an envelope back from a message payload.
func DecodeEnvelope(payload []byte) (Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Envelope{}, err
	}
	return envelope, nil
}

// ChannelSource reads envelopes from an in-process watermill topic.
type ChannelSource struct {
	subscriber message.Subscriber
	topic      string
}

var _ Source = &ChannelSource{}

func NewChannelSource(subscriber message.Subscriber, topic string) *ChannelSource {
	return &ChannelSource{subscriber: subscriber, topic: topic}
}

// Listen subscribes and hands payloads to handler on a background goroutine.
// A handler error nacks the message so the channel redelivers it.
func (s *ChannelSource) Listen(ctx context.Context, handler Handler) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", s.topic, err)
	}

	go func() {
		for msg := range messages {
			if err := handler(msg.Context(), msg.Payload); err != nil {
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}
