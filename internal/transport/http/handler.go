package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/melisasvr/vr-collab-space/internal/recording"
	"github.com/melisasvr/vr-collab-space/internal/room"
)

type Handler struct {
	room  *room.Room
	store recording.Store
}

func NewHandler(rm *room.Room, store recording.Store) *Handler {
	return &Handler{room: rm, store: store}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/room/state
func (h *Handler) GetRoomState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.room.Snapshot())
}

// GET /api/notes
func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.room.Notes())
}

// GET /api/moderation
func (h *Handler) GetModerationLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.room.ModerationLog())
}

// POST /api/recordings
func (h *Handler) SaveRecording(w http.ResponseWriter, r *http.Request) {
	doc := h.room.ExportRecording()
	location, err := h.store.Save(r.Context(), doc)
	if err != nil {
		slog.Error("handler.SaveRecording:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	slog.Info("recording saved", "location", location, "entries", len(doc.Transcript))
	writeJSON(w, http.StatusCreated, SaveRecordingResponse{
		Message:  "Recording saved",
		Filename: location,
	})
}
