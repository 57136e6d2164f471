package room

import (
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

// StateView is the full external read view of the room. It is built
// under the read lock and shares no memory with the aggregate.
type StateView struct {
	RoomID           string            `json:"room_id"`
	RoomName         string            `json:"room_name"`
	IsActive         bool              `json:"is_active"`
	ParticipantCount int               `json:"participant_count"`
	RecordingEnabled bool              `json:"recording_enabled"`
	Participants     []ParticipantView `json:"participants"`
	RecentGestures   []GestureView     `json:"recent_gestures"`
	LanguagesInUse   []string          `json:"languages_in_use"`
	StartTime        *time.Time        `json:"start_time"`
	ModerationCount  int               `json:"moderation_count"`
	TranscriptCount  int               `json:"transcript_count"`
}

type ParticipantView struct {
	UserID         string        `json:"user_id"`
	Name           string        `json:"name"`
	Position       Vec3          `json:"position"`
	Rotation       Vec3          `json:"rotation"`
	Language       string        `json:"language"`
	LanguageName   string        `json:"language_name"`
	Flag           string        `json:"flag"`
	AvatarID       string        `json:"avatar_id"`
	IsSpeaking     bool          `json:"is_speaking"`
	IsMuted        bool          `json:"is_muted"`
	JoinedAt       time.Time     `json:"join_time"`
	RecentGestures []GestureView `json:"recent_gestures"`
}

type GestureView struct {
	Kind      string    `json:"type"`
	Hand      string    `json:"hand"`
	Intensity float64   `json:"intensity"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot produces a consistent point-in-time view. It never mutates
// state and may run concurrently with other reads.
func (r *Room) Snapshot() StateView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	view := StateView{
		RoomID:           r.id,
		RoomName:         r.name,
		IsActive:         r.active,
		ParticipantCount: len(r.participants),
		RecordingEnabled: r.recordingEnabled,
		Participants:     make([]ParticipantView, 0, len(r.participants)),
		RecentGestures:   gestureViews(r.gestures),
		ModerationCount:  len(r.moderation),
		TranscriptCount:  len(r.transcript),
	}
	if r.active {
		started := r.startedAt
		view.StartTime = &started
	}

	seen := make(map[domain.Language]struct{})
	for _, id := range r.order {
		p := r.participants[id]
		view.Participants = append(view.Participants, ParticipantView{
			UserID:         p.ID,
			Name:           p.Name,
			Position:       Vec3{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z},
			Rotation:       Vec3{X: p.Position.RotationX, Y: p.Position.RotationY, Z: p.Position.RotationZ},
			Language:       string(p.Language),
			LanguageName:   p.Language.Name(),
			Flag:           p.Language.Flag(),
			AvatarID:       p.AvatarID,
			IsSpeaking:     p.IsSpeaking,
			IsMuted:        p.IsMuted,
			JoinedAt:       p.JoinedAt,
			RecentGestures: gestureViews(p.RecentGestures),
		})
		if _, ok := seen[p.Language]; !ok {
			seen[p.Language] = struct{}{}
			view.LanguagesInUse = append(view.LanguagesInUse, string(p.Language))
		}
	}
	return view
}

func gestureViews(gestures []domain.Gesture) []GestureView {
	out := make([]GestureView, 0, len(gestures))
	for _, g := range gestures {
		out = append(out, GestureView{
			Kind:      g.Kind,
			Hand:      g.Hand,
			Intensity: g.Intensity,
			Timestamp: g.PerformedAt,
		})
	}
	return out
}
