// Package event publishes domain events to a RabbitMQ topic exchange. Publishing is always
// best effort: callers log failures and carry on.
package event

import (
	"context"
	"sync"
	"time"
)

type Type string

const (
	TypeExamCompleted  Type = "exam.completed"
	TypeUserLoggedIn   Type = "user.logged_in"
	TypeUserSubscribed Type = "user.subscribed"
)

type Event struct {
	Type       Type           `json:"event_type"`
	UserID     string         `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func New(t Type, userID string, payload map[string]any) *Event {
	return &Event{
		Type:       t,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, *Event) error { return nil }
func (noopPublisher) Close() error                          { return nil }

// Recorder keeps published events in memory. Used by tests across packages.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Publish(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *e)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
