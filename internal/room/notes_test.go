package room

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

func TestNotesBeforeActivation(t *testing.T) {
	r := newTestRoom()
	notes := r.Notes()
	if notes.Duration != "N/A" {
		t.Fatalf("duration = %q, want N/A before first join", notes.Duration)
	}
	if notes.ParticipantCount != 0 || notes.GestureCount != 0 {
		t.Fatalf("unexpected counts: %+v", notes)
	}
	if len(notes.KeyMoments) != 0 {
		t.Fatalf("key moments = %v, want none", notes.KeyMoments)
	}
}

func TestNotesSummaryAndKeyMoments(t *testing.T) {
	r := newTestRoom()
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)
	mustJoin(t, r, "b", "Bob", domain.LangTurkish, 10, 0, 0)

	if _, err := r.Gesture("a", "wave", "right", 1.0); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Gesture("b", "thumbs_up", "left", 0.8); err != nil {
		t.Fatal(err)
	}

	notes := r.Notes()
	if notes.ParticipantCount != 2 || notes.GestureCount != 2 {
		t.Fatalf("unexpected counts: %+v", notes)
	}
	if !strings.Contains(notes.Summary, "Alice, Bob") {
		t.Fatalf("summary missing join-order names: %q", notes.Summary)
	}
	if !strings.Contains(notes.Summary, "Global Localization Project Kickoff") {
		t.Fatalf("summary missing project context: %q", notes.Summary)
	}

	want := []string{"Alice performed 'wave'", "Bob performed 'thumbs_up'"}
	if !reflect.DeepEqual(notes.KeyMoments, want) {
		t.Fatalf("key moments = %v, want %v", notes.KeyMoments, want)
	}
	if notes.Duration == "N/A" {
		t.Fatal("duration not computed for an active room")
	}
}

func TestNotesKeyMomentsCappedAtTen(t *testing.T) {
	r := newTestRoom()
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)

	for i := 0; i < 14; i++ {
		if _, err := r.Gesture("a", fmt.Sprintf("kind%d", i), "right", 1.0); err != nil {
			t.Fatal(err)
		}
	}

	notes := r.Notes()
	if notes.GestureCount != 14 {
		t.Fatalf("gesture count = %d, want 14 (transcript keeps them all)", notes.GestureCount)
	}
	if len(notes.KeyMoments) != 10 {
		t.Fatalf("key moments = %d, want 10", len(notes.KeyMoments))
	}
	if notes.KeyMoments[0] != "Alice performed 'kind4'" {
		t.Fatalf("oldest key moment = %q", notes.KeyMoments[0])
	}
}

func TestNotesIsIdempotent(t *testing.T) {
	r := newTestRoom()
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)
	if _, err := r.Gesture("a", "clap", "right", 1.0); err != nil {
		t.Fatal(err)
	}

	first := r.Notes()
	second := r.Notes()
	// Duration advances with the wall clock; everything derived from the
	// transcript must not.
	first.Duration, second.Duration = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("notes changed without new events:\n%+v\n%+v", first, second)
	}
}

func TestNotesActionItemsFallback(t *testing.T) {
	r := New(Config{ID: "vr_test", Name: "Test Room", ProjectContext: "Unscripted Sync", NotesEnabled: true})
	notes := r.Notes()
	if reflect.DeepEqual(notes.ActionItems, actionItemChecklists["Global Localization Project Kickoff"]) {
		t.Fatal("unknown context used the kickoff checklist")
	}
	if !reflect.DeepEqual(notes.ActionItems, fallbackActionItems) {
		t.Fatalf("action items = %v", notes.ActionItems)
	}
}

func TestExportRecordingPlaceholder(t *testing.T) {
	r := New(Config{ID: "vr_test", Name: "Test Room"})

	doc := r.ExportRecording()
	if doc.StartTime != nil {
		t.Fatal("start time set on an inactive room")
	}
	if len(doc.Transcript) != 1 {
		t.Fatalf("transcript = %d entries, want the single placeholder", len(doc.Transcript))
	}
	entry := doc.Transcript[0]
	if entry.Type != domain.EventInfo || entry.Data["message"] != "No events recorded yet" {
		t.Fatalf("unexpected placeholder: %+v", entry)
	}
}

func TestExportRecordingContents(t *testing.T) {
	r := newTestRoom()
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)
	mustJoin(t, r, "b", "Bob", domain.LangChinese, 1, 0, 0)
	if _, err := r.Chat("b", "this is useless"); err != nil {
		t.Fatal(err)
	}

	doc := r.ExportRecording()
	if doc.RoomID != "vr_test" || doc.RoomName != "Test Room" {
		t.Fatalf("room identity wrong: %+v", doc)
	}
	if doc.StartTime == nil {
		t.Fatal("start time missing on an active room")
	}
	if !reflect.DeepEqual(doc.Participants, []string{"Alice", "Bob"}) {
		t.Fatalf("participants = %v", doc.Participants)
	}
	if len(doc.ModerationLog) != 1 {
		t.Fatalf("moderation log = %d entries, want 1", len(doc.ModerationLog))
	}
	last := doc.Transcript[len(doc.Transcript)-1]
	if last.Type != domain.EventChat {
		t.Fatalf("last transcript entry = %s, want chat", last.Type)
	}
}
