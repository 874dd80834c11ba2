package engine

import "time"

// EventType represents the lifecycle points a session reports
type EventType string

const (
	EventSessionOpen  EventType = "session_open"
	EventSessionClose EventType = "session_close"
	EventDispatch     EventType = "dispatch"
	EventCommit       EventType = "commit"
	EventView         EventType = "view"
)

// Event represents a lifecycle event in a view session
type Event struct {
	Type      EventType   // Type of event
	SessionID string      // Session the event belongs to
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Event-specific data (action name, row counts)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}
