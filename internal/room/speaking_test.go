package room

import (
	"testing"
	"time"

	"github.com/melisasvr/vr-collab-space/internal/domain"
)

func newSpeakingRoom(clearAfter time.Duration) *Room {
	return New(Config{
		ID:                 "vr_test",
		Name:               "Test Room",
		SpeakingClearAfter: clearAfter,
	})
}

func waitDeferred(t *testing.T, r *Room, within time.Duration) Event {
	t.Helper()
	select {
	case ev := <-r.Deferred():
		return ev
	case <-time.After(within):
		t.Fatal("no deferred event within deadline")
		return nil
	}
}

func assertNoDeferred(t *testing.T, r *Room, within time.Duration) {
	t.Helper()
	select {
	case ev := <-r.Deferred():
		t.Fatalf("unexpected deferred event %q", ev.Name())
	case <-time.After(within):
	}
}

func TestGestureMarksSpeakingThenClears(t *testing.T) {
	r := newSpeakingRoom(20 * time.Millisecond)
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)

	if _, err := r.Gesture("a", "wave", "right", 1.0); err != nil {
		t.Fatal(err)
	}
	if !r.Snapshot().Participants[0].IsSpeaking {
		t.Fatal("gesture did not mark participant speaking")
	}

	ev := waitDeferred(t, r, time.Second)
	upd, ok := ev.(SpeakingUpdated)
	if !ok {
		t.Fatalf("deferred event type %T", ev)
	}
	if upd.UserID != "a" || upd.IsSpeaking {
		t.Fatalf("unexpected payload: %+v", upd)
	}
	if r.Snapshot().Participants[0].IsSpeaking {
		t.Fatal("speaking flag not cleared")
	}
}

func TestRepeatGestureDebouncesClearTimer(t *testing.T) {
	r := newSpeakingRoom(100 * time.Millisecond)
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)

	// a second gesture before the timer fires replaces it, so only one
	// clear arrives and only after the second gesture's full window
	if _, err := r.Gesture("a", "wave", "right", 1.0); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, err := r.Gesture("a", "clap", "left", 1.0); err != nil {
		t.Fatal(err)
	}

	assertNoDeferred(t, r, 60*time.Millisecond)
	if !r.Snapshot().Participants[0].IsSpeaking {
		t.Fatal("stale timer cleared the speaking flag early")
	}

	ev := waitDeferred(t, r, time.Second)
	if upd := ev.(SpeakingUpdated); upd.IsSpeaking {
		t.Fatalf("unexpected payload: %+v", upd)
	}
	assertNoDeferred(t, r, 100*time.Millisecond)
}

func TestLeaveCancelsSpeakingTimer(t *testing.T) {
	r := newSpeakingRoom(20 * time.Millisecond)
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)

	if _, err := r.Gesture("a", "wave", "right", 1.0); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Leave("a"); err != nil {
		t.Fatal(err)
	}
	assertNoDeferred(t, r, 100*time.Millisecond)
}

func TestSetSpeakingDirect(t *testing.T) {
	r := newSpeakingRoom(0)
	mustJoin(t, r, "a", "Alice", domain.LangEnglish, 0, 0, 0)

	events, err := r.SetSpeaking("a", true)
	if err != nil {
		t.Fatal(err)
	}
	if upd := events[0].(SpeakingUpdated); !upd.IsSpeaking || upd.UserID != "a" {
		t.Fatalf("unexpected payload: %+v", upd)
	}
	if !r.Snapshot().Participants[0].IsSpeaking {
		t.Fatal("flag not set")
	}
	if _, err := r.SetSpeaking("a", false); err != nil {
		t.Fatal(err)
	}
	if r.Snapshot().Participants[0].IsSpeaking {
		t.Fatal("flag not cleared")
	}
}
