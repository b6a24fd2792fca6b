package key

import "strings"

// Chord is the unit of binding: a key, the modifiers held with it, and the
// transition that triggers it. Chords are comparable and may be used as map
// keys; chords that differ only in Edge are distinct.
type Chord struct {
	Code Code
	Mods Modifier
	Edge Edge
}

// NewChord creates a chord.
func NewChord(code Code, mods Modifier, edge Edge) Chord {
	return Chord{Code: code, Mods: mods, Edge: edge}
}

// WithEdge returns a copy of the chord listening for edge.
func (c Chord) WithEdge(edge Edge) Chord {
	c.Edge = edge
	return c
}

// Keys returns the key specification without the edge, e.g. "Ctrl+S".
// The result is accepted by ParseKeys.
func (c Chord) Keys() string {
	if c.Mods.IsEmpty() {
		return c.Code.String()
	}
	return c.Mods.String() + "+" + c.Code.String()
}

// String renders the chord for display: "Ctrl+Shift + W + Held".
// The modifier part is omitted when no modifier is held.
func (c Chord) String() string {
	parts := make([]string, 0, 3)
	if !c.Mods.IsEmpty() {
		parts = append(parts, c.Mods.String())
	}
	parts = append(parts, c.Code.String(), c.Edge.String())
	return strings.Join(parts, " + ")
}
