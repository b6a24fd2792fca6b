package host

import (
	"cmp"
	"slices"
	"time"

	"github.com/dshills/robofactory/internal/input/key"
)

// Default autorepeat timing. Most terminals wait around half a second before
// repeating and then repeat every 30-50ms; the gap leaves room for jitter.
const (
	DefaultInitialDelay = 600 * time.Millisecond
	DefaultRepeatGap    = 120 * time.Millisecond
)

// Release is a key the Tracker has decided is no longer held.
type Release struct {
	Code key.Code
	Mods key.Modifier

	// Held is the time between the first press and the last repeat seen.
	// A key that never repeated has a zero Held duration.
	Held time.Duration
}

type heldKey struct {
	mods      key.Modifier
	pressedAt time.Time
	lastSeen  time.Time
	deadline  time.Time
}

// Tracker infers held keys from terminal autorepeat.
//
// A key is pressed on its first event and released once no repeat has
// arrived by its deadline: InitialDelay after the first event, RepeatGap
// after each repeat. Tracker is not safe for concurrent use.
type Tracker struct {
	initialDelay time.Duration
	repeatGap    time.Duration
	held         map[key.Code]*heldKey
}

// NewTracker creates a Tracker. Non-positive durations fall back to the
// defaults.
func NewTracker(initialDelay, repeatGap time.Duration) *Tracker {
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}
	if repeatGap <= 0 {
		repeatGap = DefaultRepeatGap
	}
	return &Tracker{
		initialDelay: initialDelay,
		repeatGap:    repeatGap,
		held:         make(map[key.Code]*heldKey),
	}
}

// Press records a key-down event at now. It returns true when the event is
// an autorepeat of a key already held.
func (t *Tracker) Press(code key.Code, mods key.Modifier, now time.Time) bool {
	if h, ok := t.held[code]; ok {
		h.mods = mods
		h.lastSeen = now
		h.deadline = now.Add(t.repeatGap)
		return true
	}

	t.held[code] = &heldKey{
		mods:      mods,
		pressedAt: now,
		lastSeen:  now,
		deadline:  now.Add(t.initialDelay),
	}
	return false
}

// Expire releases every key whose deadline is not after now.
func (t *Tracker) Expire(now time.Time) []Release {
	var released []Release
	for code, h := range t.held {
		if h.deadline.After(now) {
			continue
		}
		released = append(released, h.release(code))
		delete(t.held, code)
	}
	sortReleases(released)
	return released
}

// ReleaseAll releases every held key, as when the terminal loses focus.
func (t *Tracker) ReleaseAll() []Release {
	released := make([]Release, 0, len(t.held))
	for code, h := range t.held {
		released = append(released, h.release(code))
	}
	clear(t.held)
	sortReleases(released)
	return released
}

// IsHeld reports whether code is currently held.
func (t *Tracker) IsHeld(code key.Code) bool {
	_, ok := t.held[code]
	return ok
}

// HeldKeys returns the held keys in a stable order.
func (t *Tracker) HeldKeys() []key.Code {
	codes := make([]key.Code, 0, len(t.held))
	for code := range t.held {
		codes = append(codes, code)
	}
	slices.SortFunc(codes, compareCodes)
	return codes
}

// ActiveModifiers returns the union of the modifiers reported with the held
// keys. Terminals never report a bare modifier key.
func (t *Tracker) ActiveModifiers() key.Modifier {
	var mods key.Modifier
	for _, h := range t.held {
		mods |= h.mods
	}
	return mods
}

func (h *heldKey) release(code key.Code) Release {
	return Release{Code: code, Mods: h.mods, Held: h.lastSeen.Sub(h.pressedAt)}
}

func compareCodes(a, b key.Code) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Rune, b.Rune)
}

func sortReleases(rs []Release) {
	slices.SortFunc(rs, func(a, b Release) int {
		return compareCodes(a.Code, b.Code)
	})
}
