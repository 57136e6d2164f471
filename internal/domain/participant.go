package domain

import "time"

// MaxRecentGestures bounds a participant's gesture history; the oldest
// entry is evicted beyond this.
const MaxRecentGestures = 5

type Participant struct {
	ID             string
	Name           string
	Language       Language
	Position       Position
	IsMuted        bool
	IsSpeaking     bool
	JoinedAt       time.Time
	AvatarID       string
	RecentGestures []Gesture
}

// RecordGesture appends g to the bounded history, evicting the oldest
// entry when the cap is exceeded. Order stays oldest-first.
func (p *Participant) RecordGesture(g Gesture) {
	p.RecentGestures = append(p.RecentGestures, g)
	if len(p.RecentGestures) > MaxRecentGestures {
		p.RecentGestures = p.RecentGestures[len(p.RecentGestures)-MaxRecentGestures:]
	}
}
