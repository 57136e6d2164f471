// Package recording persists session recordings: one self-contained
// document per save, capturing the transcript, participants and
// moderation log at that moment.
package recording

import (
	"context"
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

// Document is the persisted recording format.
type Document struct {
	RoomID         string                    `json:"room_id"`
	RoomName       string                    `json:"room_name"`
	ProjectContext string                    `json:"project_context"`
	StartTime      *time.Time                `json:"start_time"`
	EndTime        time.Time                 `json:"end_time"`
	Participants   []string                  `json:"participants"`
	Transcript     []domain.TranscriptEntry  `json:"transcript"`
	ModerationLog  []domain.ModerationRecord `json:"moderation_log"`
}

// Store saves recording documents. Save returns a location the caller
// can report back: a filename for the file store, a row id for postgres.
type Store interface {
	Save(ctx context.Context, doc Document) (string, error)
}
