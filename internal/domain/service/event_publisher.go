package service

import (
	"context"
	"time"
)

// Domain notification types published after a committed change.
const (
	EventCreated         = "event.created"
	EventUpdated         = "event.updated"
	EventDeleted         = "event.deleted"
	EventLocationUpdated = "location.updated"
)

// EventNotification describes a committed change to an event.
type EventNotification struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Type      string    `json:"type"`
	EventID   string    `json:"event_id"`
	ActorID   string    `json:"actor_id"`
	At        time.Time `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEventNotification publishes a change notification
	PublishEventNotification(ctx context.Context, notification *EventNotification) error

	// Close releases any resources held by the publisher
	Close() error
}
