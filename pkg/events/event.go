package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published after a mutation commits.
const (
	BoardCreated  = "BOARD_CREATED"
	BoardRenamed  = "BOARD_RENAMED"
	BoardDeleted  = "BOARD_DELETED"
	NoteCreated   = "NOTE_CREATED"
	NoteUpdated   = "NOTE_UPDATED"
	NoteDeleted   = "NOTE_DELETED"
	NoteFormatted = "NOTE_FORMATTED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOARD_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher delivers events to a bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Handler processes one delivered payload, an encoded Envelope.
type Handler func(ctx context.Context, payload []byte) error

// Source delivers published payloads to a handler until ctx ends.
type Source interface {
	Listen(ctx context.Context, handler Handler) error
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Envelope is the wire form shared by every bus.
type Envelope struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

func NewEnvelope(event Event) Envelope {
	occurredAt := event.Timestamp()
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return Envelope{
		Id:         uuid.NewString(),
		Type:       event.EventType(),
		OccurredAt: occurredAt.UTC(),
		Data:       event.Payload(),
	}
}
