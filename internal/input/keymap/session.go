package keymap

import "github.com/dshills/robofactory/internal/input/key"

// Session is the rebind capture state machine.
//
//	Idle --Begin(a)--> Awaiting(a, 0)
//	Awaiting --Press--> Awaiting(a, 1)
//	Awaiting --Advance--> Awaiting(a, n+1)   only when n > 0
//	Awaiting --Release(c)--> Idle            binds a to classified c
//	Awaiting --Cancel--> Idle
//
// The zero value is Idle.
type Session[S any] struct {
	waiting   *Action[S]
	heldTicks uint
}

// Begin starts capturing a chord for action. A session already in progress
// is replaced.
func (s *Session[S]) Begin(action *Action[S]) {
	s.waiting = action
	s.heldTicks = 0
}

// Active reports whether a capture is in progress.
func (s *Session[S]) Active() bool {
	return s.waiting != nil
}

// Waiting returns the action awaiting a chord.
func (s *Session[S]) Waiting() (*Action[S], bool) {
	return s.waiting, s.waiting != nil
}

// HeldTicks returns how many ticks the candidate key has been held.
func (s *Session[S]) HeldTicks() uint {
	return s.heldTicks
}

// Press restarts the hold counter for a freshly pressed candidate key.
func (s *Session[S]) Press() {
	if s.waiting == nil {
		return
	}
	s.heldTicks = 1
}

// Advance counts one update tick while the candidate key is held.
func (s *Session[S]) Advance() {
	if s.waiting == nil || s.heldTicks == 0 {
		return
	}
	s.heldTicks++
}

// Release completes the capture. The returned chord is c with its edge
// replaced by the hold classification. ok is false if no capture was in
// progress.
func (s *Session[S]) Release(c key.Chord) (chord key.Chord, action *Action[S], ok bool) {
	if s.waiting == nil {
		return c, nil, false
	}
	chord = c.WithEdge(ClassifyHold(s.heldTicks, c.Edge))
	action = s.waiting
	s.waiting = nil
	s.heldTicks = 0
	return chord, action, true
}

// Cancel abandons the capture. Returns false if none was in progress.
func (s *Session[S]) Cancel() bool {
	if s.waiting == nil {
		return false
	}
	s.waiting = nil
	s.heldTicks = 0
	return true
}
