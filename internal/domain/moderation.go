package domain

import "time"

type ModerationAction string

const (
	ActionNone    ModerationAction = "none"
	ActionWarning ModerationAction = "warning"
	ActionMute    ModerationAction = "mute"
	ActionTimeout ModerationAction = "timeout"
	ActionRemove  ModerationAction = "remove"
)

// ModerationRecord is the flagged outcome of a toxicity check on a chat
// event. Records are append-only.
type ModerationRecord struct {
	Timestamp time.Time        `json:"timestamp"`
	UserID    string           `json:"user_id"`
	Message   string           `json:"message"`
	Action    ModerationAction `json:"action"`
	Reason    string           `json:"reason"`
}

// NotesSummary is the derived meeting-notes view over the transcript.
type NotesSummary struct {
	Summary          string   `json:"summary"`
	ActionItems      []string `json:"action_items"`
	KeyMoments       []string `json:"key_moments"`
	ParticipantCount int      `json:"participant_count"`
	GestureCount     int      `json:"gesture_count"`
	Duration         string   `json:"duration"`
}
