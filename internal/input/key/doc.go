// Package key provides the value types that describe keyboard input for
// the binding system.
//
// This package defines:
//
//   - Key: identifies a special key (arrows, function keys, Space, ...) or
//     marks a character key
//   - Code: one physical key, a Key plus the rune for character keys
//   - Modifier: the set of held modifier keys (Ctrl, Alt, Shift, Meta)
//   - Edge: the transition a binding listens for (Press, Release, Sustained)
//   - Chord: a Code, a Modifier set and an Edge; the unit of binding
//
// # Chord Specifications
//
// Binding files describe chords as a key specification plus an edge:
//
//	keys = "W"            edge = "held"
//	keys = "Ctrl+S"       edge = "press"
//	keys = "Shift+Space"  edge = "release"
//
// Edges accept both the descriptive names (press, release, sustained) and
// the short ones (down, up, held).
//
// # Display
//
// Chord.String renders "Modifiers + Key + Edge", dropping the modifier part
// when no modifier is held: "W + Held", "Ctrl + S + Press".
package key
