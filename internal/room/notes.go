package room

import (
	"fmt"
	"strings"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

// actionItemChecklists maps a project context to its fixed checklist.
// Unlisted contexts get the generic fallback.
var actionItemChecklists = map[string][]string{
	"Global Localization Project Kickoff": {
		"Alice (EN) to draft English UI copy by Thu",
		"Mehmet (TR) to validate Turkish date/time formats",
		"Carlos (ES) to provide Spanish voice samples",
		"Marie (FR) to review French legal disclaimers",
		"Hans (DE) to test German text expansion in VR layout",
		"Giulia (IT) to coordinate Italian beta testers",
		"Wei (ZH) to confirm Chinese character rendering in VR",
		"All: Share recording with stakeholders by tomorrow",
	},
}

var fallbackActionItems = []string{
	"Share meeting notes with the team",
	"Review key moments before the next session",
	"Share recording with stakeholders by tomorrow",
}

// Notes derives the meeting summary from the transcript. Pure read:
// calling it twice with no events in between returns identical results.
func (r *Room) Notes() domain.NotesSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.participants))
	for _, id := range r.order {
		names = append(names, r.participants[id].Name)
	}

	var gestures []domain.TranscriptEntry
	for _, entry := range r.transcript {
		if entry.Type == domain.EventGesture {
			gestures = append(gestures, entry)
		}
	}

	recent := gestures
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	keyMoments := make([]string, 0, len(recent))
	for _, g := range recent {
		user, _ := g.Data["user"].(string)
		gesture, _ := g.Data["gesture"].(string)
		keyMoments = append(keyMoments, fmt.Sprintf("%s performed '%s'", user, gesture))
	}

	summary := fmt.Sprintf(
		"Team sync for '%s' with %d members: %s. "+
			"Participants reviewed initial localization requirements and demonstrated cross-cultural gestures. "+
			"Next phase: finalize language-specific UI assets by EOD Friday.",
		r.projectContext, len(names), strings.Join(names, ", "),
	)

	actionItems := actionItemChecklists[r.projectContext]
	if actionItems == nil {
		actionItems = fallbackActionItems
	}

	duration := "N/A"
	if r.active {
		duration = r.now().Sub(r.startedAt).String()
	}

	return domain.NotesSummary{
		Summary:          summary,
		ActionItems:      actionItems,
		KeyMoments:       keyMoments,
		ParticipantCount: len(names),
		GestureCount:     len(gestures),
		Duration:         duration,
	}
}
