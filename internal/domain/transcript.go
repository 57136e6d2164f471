package domain

import "time"

// EventType classifies transcript entries.
type EventType string

const (
	EventUserJoined      EventType = "user_joined"
	EventUserLeft        EventType = "user_left"
	EventPositionUpdate  EventType = "position_update"
	EventProximity       EventType = "proximity"
	EventGesture         EventType = "gesture"
	EventChat            EventType = "chat"
	EventRecordingToggle EventType = "recording_toggle"
	EventInfo            EventType = "info"
)

// TranscriptEntry is one appended record of the session event log.
// Entries are never mutated or deleted; insertion order is causal order.
type TranscriptEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      EventType      `json:"type"`
	Data      map[string]any `json:"data"`
}
