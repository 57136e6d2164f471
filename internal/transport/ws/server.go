package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/melisasvr/vr-collab-space/internal/domain"
	"github.com/melisasvr/vr-collab-space/internal/recording"
	"github.com/melisasvr/vr-collab-space/internal/room"
)

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	room     *room.Room
	store    recording.Store

	pingEvery time.Duration
}

func NewServer(hub *Hub, rm *room.Room, store recording.Store) *Server {
	return &Server{
		hub:   hub,
		room:  rm,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: 15 * time.Second,
	}
}

// Run drains the room's deferred events (the delayed speaking-clear)
// and fans them out. Call once; returns when ctx is done.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.room.Deferred():
			s.hub.Broadcast(Message{Type: ev.Name(), Payload: ev})
			s.broadcastState()
		}
	}
}

// WS endpoint: GET /ws
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	c := newWsConn(conn)
	s.hub.Add(c)
	slog.Debug("ws client connected", "remote", conn.RemoteAddr())

	// Initial full state so a late subscriber starts consistent.
	if err := c.Send(Message{Type: TypeRoomUpdate, Payload: s.room.Snapshot()}); err != nil {
		slog.Warn("ws send initial state failed", "err", err)
	}

	go s.writeLoop(r.Context(), c)
	s.readLoop(r.Context(), c)

	s.hub.Remove(c)
	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "err", err)
	}
	slog.Debug("ws client disconnected", "remote", conn.RemoteAddr())
}

func (s *Server) readLoop(ctx context.Context, c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(1 << 20)
	c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(c, domain.ErrInvalidPayload)
			continue
		}
		s.dispatch(ctx, c, msg)
	}
}

// dispatch applies one inbound command to the room and fans out the
// resulting events. A failed command changes nothing and only the
// sender hears about the error.
func (s *Server) dispatch(ctx context.Context, c *wsConn, msg Message) {
	switch msg.Type {
	case CmdJoin:
		var cmd JoinCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" || cmd.Name == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		lang, known := domain.ParseLanguage(cmd.Language)
		if !known {
			slog.Debug("unknown language, defaulting", "code", cmd.Language, "user", cmd.UserID)
		}
		events, err := s.room.Join(cmd.UserID, cmd.Name, lang, domain.Position{X: cmd.X, Y: cmd.Y, Z: cmd.Z})
		s.finish(c, events, err)

	case CmdMove:
		var cmd MoveCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		events, err := s.room.Move(cmd.UserID, domain.Position{
			X: cmd.X, Y: cmd.Y, Z: cmd.Z,
			RotationX: cmd.RotationX, RotationY: cmd.RotationY, RotationZ: cmd.RotationZ,
		})
		s.finish(c, events, err)

	case CmdGesture:
		var cmd GestureCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		if cmd.GestureType == "" {
			cmd.GestureType = "wave"
		}
		if cmd.Hand == "" {
			cmd.Hand = "right"
		}
		intensity := 1.0
		if cmd.Intensity != nil {
			intensity = *cmd.Intensity
		}
		events, err := s.room.Gesture(cmd.UserID, cmd.GestureType, cmd.Hand, intensity)
		s.finish(c, events, err)

	case CmdChat:
		var cmd ChatCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" || cmd.Message == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		events, err := s.room.Chat(cmd.UserID, cmd.Message)
		s.finish(c, events, err)

	case CmdSetMuted:
		var cmd MuteCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		events, err := s.room.SetMuted(cmd.UserID, cmd.Muted)
		s.finish(c, events, err)

	case CmdLeave:
		var cmd LeaveCommand
		if err := decode(msg.Payload, &cmd); err != nil || cmd.UserID == "" {
			s.sendError(c, domain.ErrInvalidPayload)
			return
		}
		events, err := s.room.Leave(cmd.UserID)
		s.finish(c, events, err)

	case CmdToggleRecording:
		s.finish(c, s.room.ToggleRecording(), nil)

	case CmdRequestNotes:
		s.hub.Broadcast(Message{Type: TypeNotesResponse, Payload: s.room.Notes()})

	case CmdRequestModerationLog:
		_ = c.Send(Message{Type: TypeModerationLogResponse, Payload: s.room.ModerationLog()})

	case CmdSaveRecording:
		s.saveRecording(ctx, c)

	default:
		// ignore
	}
}

func (s *Server) finish(c *wsConn, events []room.Event, err error) {
	if err != nil {
		s.sendError(c, err)
		return
	}
	for _, ev := range events {
		s.hub.Broadcast(Message{Type: ev.Name(), Payload: ev})
	}
	if len(events) > 0 {
		s.broadcastState()
	}
}

// saveRecording captures the document under the room lock, then writes
// it with the lock released.
func (s *Server) saveRecording(ctx context.Context, c *wsConn) {
	doc := s.room.ExportRecording()
	location, err := s.store.Save(ctx, doc)
	if err != nil {
		slog.Error("save recording failed", "err", err)
		s.hub.Broadcast(Message{
			Type:    TypeSaveRecordingResponse,
			Payload: SaveRecordingResponse{Error: err.Error()},
		})
		return
	}
	slog.Info("recording saved", "location", location, "entries", len(doc.Transcript))
	s.hub.Broadcast(Message{
		Type:    TypeSaveRecordingResponse,
		Payload: SaveRecordingResponse{Message: "Recording saved", Filename: location},
	})
}

func (s *Server) broadcastState() {
	s.hub.Broadcast(Message{Type: TypeRoomUpdate, Payload: s.room.Snapshot()})
}

func (s *Server) sendError(c *wsConn, err error) {
	_ = c.Send(Message{Type: TypeError, Payload: ErrorPayload{
		Code:    errorCode(err),
		Message: err.Error(),
	}})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateParticipant):
		return "duplicate_participant"
	case errors.Is(err, domain.ErrUnknownParticipant):
		return "unknown_participant"
	case errors.Is(err, domain.ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, domain.ErrPersistenceFailure):
		return "persistence_failure"
	default:
		return "internal"
	}
}

func (s *Server) writeLoop(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second))
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		}
	}
}

// --- helpers ---

func decode(payload interface{}, dst interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

type wsConn struct {
	conn   *websocket.Conn
	sendMu chan struct{}
	closed chan struct{}
}

func newWsConn(c *websocket.Conn) *wsConn {
	return &wsConn{
		conn:   c,
		sendMu: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(msg Message) error {
	c.sendMu <- struct{}{}
	defer func() { <-c.sendMu }()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return c.conn.WriteJSON(msg)
}

func (c *wsConn) Close() error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}

	return c.conn.Close()
}
