package testutil

import (
	"context"
	"sync"

	"bulletin-board-be/pkg/events"
	"bulletin-board-be/pkg/llm"
)

// StubLLM returns a fixed completion or error and records every prompt.
type StubLLM struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

var _ llm.LLMProvider = &StubLLM{}

func (s *StubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

func (s *StubLLM) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

func (s *StubLLM) Calls() int {
	return len(s.Prompts())
}

// RecordingPublisher keeps published events in memory.
type RecordingPublisher struct {
	Err error

	mu     sync.Mutex
	events []events.Event
}

var _ events.Publisher = &RecordingPublisher{}

func (p *RecordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.EventType())
	}
	return types
}
