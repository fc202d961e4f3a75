package services

import "time"

// EventLogin tags an event recorded when a user signs in.
const EventLogin = "login"

// UserEvent represents a user-generated behavioral event.
// Events are append-only: once recorded they are never mutated or removed.
type UserEvent struct {
	eventType string
	timestamp time.Time
}

// NewUserEvent creates an event of the given type stamped with the current time.
func NewUserEvent(eventType string) UserEvent {
	return UserEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Type returns the event tag (e.g. "login").
func (e UserEvent) Type() string {
	return e.eventType
}

// Timestamp returns when the event was recorded.
func (e UserEvent) Timestamp() time.Time {
	return e.timestamp
}

// EventRecorder is implemented by components that can record user events.
type EventRecorder interface {
	// Record stores the given event.
	Record(e UserEvent)
}
