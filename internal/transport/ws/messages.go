package ws

// Inbound command types.
const (
	CmdJoin                 = "join"
	CmdMove                 = "move"
	CmdGesture              = "gesture"
	CmdChat                 = "chat"
	CmdSetMuted             = "set_muted"
	CmdLeave                = "leave"
	CmdToggleRecording      = "toggle_recording"
	CmdRequestNotes         = "request_notes"
	CmdRequestModerationLog = "request_moderation_log"
	CmdSaveRecording        = "save_recording"
)

// Outbound types not derived from a room event.
const (
	TypeRoomUpdate            = "room_update"
	TypeNotesResponse         = "notes_response"
	TypeModerationLogResponse = "moderation_log_response"
	TypeSaveRecordingResponse = "save_recording_response"
	TypeError                 = "error"
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type JoinCommand struct {
	UserID   string  `json:"user_id"`
	Name     string  `json:"name"`
	Language string  `json:"language"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

type MoveCommand struct {
	UserID    string  `json:"user_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	RotationX float64 `json:"rotation_x"`
	RotationY float64 `json:"rotation_y"`
	RotationZ float64 `json:"rotation_z"`
}

type GestureCommand struct {
	UserID      string   `json:"user_id"`
	GestureType string   `json:"gesture_type"`
	Hand        string   `json:"hand"`
	Intensity   *float64 `json:"intensity"`
}

type ChatCommand struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type MuteCommand struct {
	UserID string `json:"user_id"`
	Muted  bool   `json:"muted"`
}

type LeaveCommand struct {
	UserID string `json:"user_id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SaveRecordingResponse struct {
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}
