package room

import (
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
	"github.com/melisasvr/vr-collab-space/internal/recording"
)

// ExportRecording captures a consistent recording document under the
// read lock. The caller persists it after the lock is released, so no
// I/O ever happens while holding the room lock.
func (r *Room) ExportRecording() recording.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.now()

	names := make([]string, 0, len(r.participants))
	for _, id := range r.order {
		names = append(names, r.participants[id].Name)
	}

	transcript := make([]domain.TranscriptEntry, len(r.transcript))
	copy(transcript, r.transcript)
	if len(transcript) == 0 {
		// Never write an empty transcript array.
		transcript = []domain.TranscriptEntry{{
			Timestamp: now,
			Type:      domain.EventInfo,
			Data:      map[string]any{"message": "No events recorded yet"},
		}}
	}

	moderation := make([]domain.ModerationRecord, len(r.moderation))
	copy(moderation, r.moderation)

	var started *time.Time
	if r.active {
		t := r.startedAt
		started = &t
	}

	return recording.Document{
		RoomID:         r.id,
		RoomName:       r.name,
		ProjectContext: r.projectContext,
		StartTime:      started,
		EndTime:        now,
		Participants:   names,
		Transcript:     transcript,
		ModerationLog:  moderation,
	}
}
