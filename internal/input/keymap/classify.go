package keymap

import "github.com/dshills/robofactory/internal/input/key"

// Hold thresholds, in update ticks. They assume roughly 60 ticks per second
// and are fixed: bindings captured with one build must classify the same
// way in the next.
const (
	// SustainThreshold is the first tick count classified as Sustained.
	SustainThreshold = 30

	// ReleaseThreshold is the first tick count classified as Release.
	ReleaseThreshold = 60
)

// ClassifyHold converts how long a captured key was held into the edge the
// new binding listens for. A zero count means the press was never observed
// during capture; fallback, the edge of the terminating event, is returned
// unchanged in that case.
func ClassifyHold(heldTicks uint, fallback key.Edge) key.Edge {
	switch {
	case heldTicks >= ReleaseThreshold:
		return key.Release
	case heldTicks >= SustainThreshold:
		return key.Sustained
	case heldTicks > 0:
		return key.Press
	default:
		return fallback
	}
}
