package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/ghostmaze/internal/engine"
)

func newPlayingLoop(t *testing.T) (*Session, *Loop) {
	t.Helper()
	s := New(openLayout(20, 10), testOptions(0, 0, 1), nil)
	s.SubmitDirection(engine.Right)
	return s, NewLoop(s)
}

func TestLoopTicksOnAccumulatedTime(t *testing.T) {
	_, l := newPlayingLoop(t)

	frames := []struct {
		offset time.Duration
		ticked bool
	}{
		{0, false},
		{100 * time.Millisecond, false},
		{179 * time.Millisecond, false},
		{180 * time.Millisecond, true},
		{300 * time.Millisecond, false},
		{360 * time.Millisecond, true},
	}
	for _, f := range frames {
		if _, ticked := l.Frame(t0.Add(f.offset)); ticked != f.ticked {
			t.Errorf("frame at %v: ticked = %v, want %v", f.offset, ticked, f.ticked)
		}
	}
}

func TestLoopLongFrameTicksOnce(t *testing.T) {
	s, l := newPlayingLoop(t)
	l.Frame(t0)

	st, ticked := l.Frame(t0.Add(2 * time.Second))
	if !ticked {
		t.Fatal("long frame did not tick")
	}
	if st.Tick != 1 {
		t.Errorf("Tick = %d, want 1", st.Tick)
	}
	// The accumulator restarts from zero instead of carrying the excess.
	if _, ticked := l.Frame(t0.Add(2*time.Second + 10*time.Millisecond)); ticked {
		t.Error("excess time carried into the next frame")
	}
	if s.Snapshot().Tick != 1 {
		t.Errorf("session Tick = %d, want 1", s.Snapshot().Tick)
	}
}

func TestLoopStop(t *testing.T) {
	s, l := newPlayingLoop(t)
	l.Frame(t0)
	l.Stop()

	if _, ticked := l.Frame(t0.Add(time.Second)); ticked {
		t.Error("stopped loop ticked")
	}
	if !l.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
	if s.Snapshot().Tick != 0 {
		t.Error("stopped loop advanced the session")
	}

	l.Reset(t0.Add(time.Second))
	if _, ticked := l.Frame(t0.Add(time.Second + 200*time.Millisecond)); !ticked {
		t.Error("reset loop did not resume")
	}
}
