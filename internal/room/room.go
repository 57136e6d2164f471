package room

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

const (
	// ProximityThreshold is the pairwise distance below which a move
	// raises a proximity alert.
	ProximityThreshold = 3.0
	// GestureVisibleRange is the radius within which other participants
	// observe a gesture. Checked at gesture time only.
	GestureVisibleRange = 5.0

	// maxGestureLog caps the globally exposed gesture feed.
	maxGestureLog = 10

	// gestureDuration is the fixed duration stamped on every gesture.
	gestureDuration = 1.0

	defaultSpeakingClearAfter = 2 * time.Second
)

// DefaultDenylist is the moderation phrase list used when the config
// provides none.
var DefaultDenylist = []string{"hate", "stupid", "idiot", "shut up", "useless", "dumb"}

type Config struct {
	ID             string
	Name           string
	ProjectContext string

	ModerationEnabled bool
	NotesEnabled      bool
	Denylist          []string

	// SpeakingClearAfter is how long after a gesture the speaking flag
	// is dropped. Zero means the default of 2s.
	SpeakingClearAfter time.Duration
}

// Room is the authoritative session aggregate. All mutations run under
// a single writer lock; snapshots take the read lock and copy out, so a
// reader never observes a half-applied operation.
type Room struct {
	mu sync.RWMutex

	id             string
	name           string
	projectContext string

	active             bool
	startedAt          time.Time
	recordingEnabled   bool
	recordingStartedAt time.Time

	participants map[string]*domain.Participant
	order        []string // join order, drives deterministic iteration
	gestures     []domain.Gesture
	transcript   []domain.TranscriptEntry
	moderation   []domain.ModerationRecord

	moderationEnabled bool
	notesEnabled      bool
	denylist          []string

	speakingClearAfter time.Duration
	speakTimers        map[string]*time.Timer
	speakGen           map[string]int

	deferred chan Event

	now func() time.Time
}

func New(cfg Config) *Room {
	denylist := cfg.Denylist
	if len(denylist) == 0 {
		denylist = DefaultDenylist
	}
	lowered := make([]string, 0, len(denylist))
	for _, phrase := range denylist {
		lowered = append(lowered, strings.ToLower(phrase))
	}

	clearAfter := cfg.SpeakingClearAfter
	if clearAfter <= 0 {
		clearAfter = defaultSpeakingClearAfter
	}

	return &Room{
		id:                 cfg.ID,
		name:               cfg.Name,
		projectContext:     cfg.ProjectContext,
		participants:       make(map[string]*domain.Participant),
		moderationEnabled:  cfg.ModerationEnabled,
		notesEnabled:       cfg.NotesEnabled,
		denylist:           lowered,
		speakingClearAfter: clearAfter,
		speakTimers:        make(map[string]*time.Timer),
		speakGen:           make(map[string]int),
		deferred:           make(chan Event, 64),
		now:                time.Now,
	}
}

// Deferred delivers events produced outside a command, currently only
// the delayed speaking-clear. The gateway drains this channel.
func (r *Room) Deferred() <-chan Event { return r.deferred }

// Join adds a participant. The first successful join activates the
// session and records its start time.
func (r *Room) Join(id, name string, lang domain.Language, pos domain.Position) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.participants[id]; ok {
		return nil, fmt.Errorf("join %q: %w", id, domain.ErrDuplicateParticipant)
	}

	now := r.now()
	p := &domain.Participant{
		ID:       id,
		Name:     name,
		Language: lang,
		Position: pos,
		JoinedAt: now,
		AvatarID: fmt.Sprintf("avatar_%d", len(r.participants)+1),
	}
	r.participants[id] = p
	r.order = append(r.order, id)

	if !r.active {
		r.active = true
		r.startedAt = now
	}

	r.logEvent(domain.EventUserJoined, map[string]any{
		"user_id":  id,
		"name":     name,
		"language": string(lang),
	})

	pack, _ := domain.PackFor(lang)
	return []Event{UserJoined{
		UserName: name,
		Language: string(lang),
		Flag:     lang.Flag(),
		Message:  name + " " + pack.UserJoined,
	}}, nil
}

// Leave removes a participant, cancels any pending speaking timer and
// logs the departure. Rejoining the same id creates a fresh participant.
func (r *Room) Leave(id string) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("leave %q: %w", id, domain.ErrUnknownParticipant)
	}

	delete(r.participants, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if t := r.speakTimers[id]; t != nil {
		t.Stop()
		delete(r.speakTimers, id)
	}
	delete(r.speakGen, id)

	r.logEvent(domain.EventUserLeft, map[string]any{
		"user_id":  id,
		"name":     p.Name,
		"language": string(p.Language),
	})

	pack, _ := domain.PackFor(p.Language)
	return []Event{UserLeft{
		UserName: p.Name,
		Language: string(p.Language),
		Flag:     p.Language.Flag(),
		Message:  p.Name + " " + pack.UserLeft,
	}}, nil
}

// Move assigns a new position and re-evaluates proximity for the mover
// against every other participant. Pairs within range fire on every
// move, with no dedup against earlier moves.
func (r *Room) Move(id string, pos domain.Position) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("move %q: %w", id, domain.ErrUnknownParticipant)
	}

	p.Position = pos
	r.logEvent(domain.EventPositionUpdate, map[string]any{
		"user_id":  id,
		"position": map[string]any{"x": pos.X, "y": pos.Y, "z": pos.Z},
		"rotation": map[string]any{"x": pos.RotationX, "y": pos.RotationY, "z": pos.RotationZ},
	})

	events := []Event{PositionUpdated{
		UserID:   id,
		Position: Vec3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Rotation: Vec3{X: pos.RotationX, Y: pos.RotationY, Z: pos.RotationZ},
	}}

	for _, otherID := range r.order {
		if otherID == id {
			continue
		}
		other := r.participants[otherID]
		distance := pos.DistanceTo(other.Position)
		if distance < ProximityThreshold {
			r.logEvent(domain.EventProximity, map[string]any{
				"user1":    p.Name,
				"user2":    other.Name,
				"distance": distance,
			})
			events = append(events, ProximityAlert{
				User1:    p.Name,
				User2:    other.Name,
				Distance: round2(distance),
			})
		}
	}
	return events, nil
}

// Gesture records a gesture in the global feed and the performer's
// history, marks the performer speaking and arms the clear timer. A
// repeat gesture resets the pending timer rather than stacking another.
func (r *Room) Gesture(id, kind, hand string, intensity float64) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("gesture %q: %w", id, domain.ErrUnknownParticipant)
	}

	now := r.now()
	g := domain.Gesture{
		Kind:        kind,
		Hand:        hand,
		Intensity:   intensity,
		Duration:    gestureDuration,
		PerformedAt: now,
	}
	r.gestures = append(r.gestures, g)
	if len(r.gestures) > maxGestureLog {
		r.gestures = r.gestures[len(r.gestures)-maxGestureLog:]
	}
	p.RecordGesture(g)
	p.IsSpeaking = true

	reaction := domain.Reaction(kind, p.Language)
	r.logEvent(domain.EventGesture, map[string]any{
		"user_id":  id,
		"user":     p.Name,
		"gesture":  kind,
		"reaction": reaction,
		"language": string(p.Language),
	})

	observers := 0
	for _, otherID := range r.order {
		if otherID == id {
			continue
		}
		if p.Position.DistanceTo(r.participants[otherID].Position) < GestureVisibleRange {
			observers++
		}
	}
	slog.Debug("gesture performed", "user", p.Name, "gesture", kind, "observers", observers)

	r.armSpeakTimer(id)

	return []Event{
		GesturePerformed{
			UserID:    id,
			User:      p.Name,
			Gesture:   kind,
			Reaction:  reaction,
			Flag:      p.Language.Flag(),
			Language:  string(p.Language),
			Timestamp: now,
		},
		SpeakingUpdated{UserID: id, IsSpeaking: true},
	}, nil
}

// armSpeakTimer replaces any pending clear timer for id. The generation
// counter makes a stale timer that already fired a no-op.
func (r *Room) armSpeakTimer(id string) {
	r.speakGen[id]++
	gen := r.speakGen[id]
	if t := r.speakTimers[id]; t != nil {
		t.Stop()
	}
	r.speakTimers[id] = time.AfterFunc(r.speakingClearAfter, func() {
		r.clearSpeaking(id, gen)
	})
}

func (r *Room) clearSpeaking(id string, gen int) {
	r.mu.Lock()
	p, ok := r.participants[id]
	if !ok || r.speakGen[id] != gen {
		r.mu.Unlock()
		return
	}
	delete(r.speakTimers, id)
	p.IsSpeaking = false
	r.mu.Unlock()

	r.publishDeferred(SpeakingUpdated{UserID: id, IsSpeaking: false})
}

func (r *Room) publishDeferred(ev Event) {
	select {
	case r.deferred <- ev:
	default:
		slog.Warn("deferred event dropped", "event", ev.Name())
	}
}

// Chat logs a chat message, which is the one path feeding the
// moderation check.
func (r *Room) Chat(id, message string) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("chat %q: %w", id, domain.ErrUnknownParticipant)
	}

	rec := r.logEvent(domain.EventChat, map[string]any{
		"user_id": id,
		"message": message,
	})

	events := []Event{ChatMessage{UserID: id, User: p.Name, Message: message}}
	if rec != nil {
		events = append(events, ModerationAlert{ModerationRecord: *rec})
	}
	return events, nil
}

// SetMuted flips the mute flag. Unknown ids fail with
// ErrUnknownParticipant, consistent with every other mutation.
func (r *Room) SetMuted(id string, muted bool) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("set muted %q: %w", id, domain.ErrUnknownParticipant)
	}
	p.IsMuted = muted
	return []Event{MuteUpdated{UserID: id, IsMuted: muted}}, nil
}

// SetSpeaking sets the speaking flag directly, bypassing the gesture
// timer. Unknown ids fail with ErrUnknownParticipant.
func (r *Room) SetSpeaking(id string, speaking bool) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[id]
	if !ok {
		return nil, fmt.Errorf("set speaking %q: %w", id, domain.ErrUnknownParticipant)
	}
	p.IsSpeaking = speaking
	return []Event{SpeakingUpdated{UserID: id, IsSpeaking: speaking}}, nil
}

// ToggleRecording flips the recording flag. Enabling stamps the start
// time and seeds an empty transcript with an info entry.
func (r *Room) ToggleRecording() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recordingEnabled = !r.recordingEnabled
	var msg string
	if r.recordingEnabled {
		r.recordingStartedAt = r.now()
		if len(r.transcript) == 0 {
			r.transcript = append(r.transcript, domain.TranscriptEntry{
				Timestamp: r.now(),
				Type:      domain.EventInfo,
				Data:      map[string]any{"message": "Recording started"},
			})
		}
		msg = "Video recording started"
	} else {
		msg = "Video recording stopped"
	}

	r.logEvent(domain.EventRecordingToggle, map[string]any{
		"state":   r.recordingEnabled,
		"message": msg,
	})

	return []Event{RecordingUpdated{IsRecording: r.recordingEnabled, Message: msg}}
}

// logEvent appends a transcript entry when any of moderation,
// note-taking or recording is on; otherwise the event never happened
// from the log's perspective. Chat entries run the moderation check and
// the appended record, if any, is returned. Callers hold the lock.
func (r *Room) logEvent(t domain.EventType, data map[string]any) *domain.ModerationRecord {
	if !(r.moderationEnabled || r.notesEnabled || r.recordingEnabled) {
		return nil
	}
	entry := domain.TranscriptEntry{Timestamp: r.now(), Type: t, Data: data}
	r.transcript = append(r.transcript, entry)

	if r.moderationEnabled && t == domain.EventChat {
		return r.checkModeration(entry)
	}
	return nil
}

// checkModeration is a stateless per-message classifier: the first
// matching denylist phrase wins.
func (r *Room) checkModeration(entry domain.TranscriptEntry) *domain.ModerationRecord {
	msg, _ := entry.Data["message"].(string)
	lower := strings.ToLower(msg)
	for _, phrase := range r.denylist {
		if strings.Contains(lower, phrase) {
			userID, _ := entry.Data["user_id"].(string)
			rec := domain.ModerationRecord{
				Timestamp: r.now(),
				UserID:    userID,
				Message:   lower,
				Action:    domain.ActionWarning,
				Reason:    "Toxic language detected",
			}
			r.moderation = append(r.moderation, rec)
			return &rec
		}
	}
	return nil
}

// ModerationLog returns a copy of the moderation records so far.
func (r *Room) ModerationLog() []domain.ModerationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ModerationRecord, len(r.moderation))
	copy(out, r.moderation)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
