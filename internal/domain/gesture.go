package domain

import "time"

// Gesture is a hand gesture or body movement. The kind is an open
// vocabulary: unknown kinds pass through unchanged.
type Gesture struct {
	Kind        string    `json:"type"`
	Hand        string    `json:"hand"`
	Intensity   float64   `json:"intensity"`
	Duration    float64   `json:"duration"`
	PerformedAt time.Time `json:"timestamp"`
}
