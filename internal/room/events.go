package room

import (
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

// Event is a state-change notification produced by a Room operation.
// The gateway fans events out to subscribers; Name is the wire type.
type Event interface {
	Name() string
}

// Vec3 is the xyz triple used in outbound payloads.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type UserJoined struct {
	UserName string `json:"name"`
	Language string `json:"language"`
	Flag     string `json:"flag"`
	Message  string `json:"message"`
}

func (UserJoined) Name() string { return "user_joined" }

type UserLeft struct {
	UserName string `json:"name"`
	Language string `json:"language"`
	Flag     string `json:"flag"`
	Message  string `json:"message"`
}

func (UserLeft) Name() string { return "user_left" }

type PositionUpdated struct {
	UserID   string `json:"user_id"`
	Position Vec3   `json:"position"`
	Rotation Vec3   `json:"rotation"`
}

func (PositionUpdated) Name() string { return "position_update" }

type GesturePerformed struct {
	UserID    string    `json:"user_id"`
	User      string    `json:"user"`
	Gesture   string    `json:"gesture"`
	Reaction  string    `json:"reaction"`
	Flag      string    `json:"flag"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

func (GesturePerformed) Name() string { return "gesture_performed" }

type SpeakingUpdated struct {
	UserID     string `json:"user_id"`
	IsSpeaking bool   `json:"is_speaking"`
}

func (SpeakingUpdated) Name() string { return "speaking_update" }

type ProximityAlert struct {
	User1    string  `json:"user1"`
	User2    string  `json:"user2"`
	Distance float64 `json:"distance"`
}

func (ProximityAlert) Name() string { return "proximity_alert" }

type ChatMessage struct {
	UserID  string `json:"user_id"`
	User    string `json:"user"`
	Message string `json:"message"`
}

func (ChatMessage) Name() string { return "chat" }

type MuteUpdated struct {
	UserID  string `json:"user_id"`
	IsMuted bool   `json:"is_muted"`
}

func (MuteUpdated) Name() string { return "mute_update" }

type RecordingUpdated struct {
	IsRecording bool   `json:"is_recording"`
	Message     string `json:"message"`
}

func (RecordingUpdated) Name() string { return "recording_update" }

type ModerationAlert struct {
	domain.ModerationRecord
}

func (ModerationAlert) Name() string { return "moderation_alert" }
