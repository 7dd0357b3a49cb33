package session

import "time"

// Loop drives a session from host frames. Elapsed time accumulates and
// one tick runs when it reaches the tick duration; the accumulator then
// restarts from zero, so a long frame never runs two ticks.
type Loop struct {
	session *Session
	step    time.Duration
	acc     time.Duration
	last    time.Time
	stopped bool
}

// NewLoop creates a loop for s using the session's tick duration.
func NewLoop(s *Session) *Loop {
	return &Loop{session: s, step: s.opts.TickDuration}
}

// Frame reports the snapshot after a host frame at now and whether a tick
// ran. Frames after Stop are ignored.
func (l *Loop) Frame(now time.Time) (*State, bool) {
	if l.stopped {
		return l.session.Snapshot(), false
	}
	if l.last.IsZero() {
		l.last = now
		return l.session.Snapshot(), false
	}

	if elapsed := now.Sub(l.last); elapsed > 0 {
		l.acc += elapsed
	}
	l.last = now
	if l.acc < l.step {
		return l.session.Snapshot(), false
	}
	l.acc = 0
	return l.session.Tick(now), true
}

// Reset restarts accumulation from now and resumes a stopped loop.
func (l *Loop) Reset(now time.Time) {
	l.acc = 0
	l.last = now
	l.stopped = false
}

// Stop cancels the loop. Pending time is discarded.
func (l *Loop) Stop() {
	l.stopped = true
	l.acc = 0
}

// Stopped reports whether Stop was called since the last Reset.
func (l *Loop) Stopped() bool {
	return l.stopped
}
