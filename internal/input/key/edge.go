package key

import (
	"fmt"
	"strings"
)

// Edge is the kind of key transition a chord listens for.
type Edge uint8

const (
	// Press fires once when the key goes down.
	Press Edge = iota

	// Release fires once when the key comes back up.
	Release

	// Sustained fires on every update tick while the key is held.
	Sustained
)

// String returns the display name of the edge.
func (e Edge) String() string {
	switch e {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Sustained:
		return "Held"
	default:
		return fmt.Sprintf("Edge(%d)", e)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	switch e {
	case Press:
		return []byte("press"), nil
	case Release:
		return []byte("release"), nil
	case Sustained:
		return []byte("held"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownEdge, e)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	edge, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = edge
	return nil
}

// ParseEdge parses an edge name. Both the descriptive names (press,
// release, sustained) and the short ones (down, up, held) are accepted.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "press", "down", "pressed":
		return Press, nil
	case "release", "up", "released":
		return Release, nil
	case "sustained", "held", "hold":
		return Sustained, nil
	case "":
		return Press, ErrEmptySpec
	}
	return Press, fmt.Errorf("%w: %q", ErrUnknownEdge, s)
}
