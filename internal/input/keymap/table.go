package keymap

import "github.com/dshills/robofactory/internal/input/key"

// Table maps chords to actions.
//
// A secondary index from action name to chord keeps UnbindAction and
// ChordFor constant time. The two maps always describe the same set of
// bindings.
type Table[S any] struct {
	byChord map[key.Chord]*Action[S]
	byName  map[string]key.Chord
}

// NewTable creates an empty binding table.
func NewTable[S any]() *Table[S] {
	return &Table[S]{
		byChord: make(map[key.Chord]*Action[S]),
		byName:  make(map[string]key.Chord),
	}
}

// Bind binds chord to action.
//
// If chord already belongs to another action, that action silently loses
// it. If action was bound to a different chord, the old binding is dropped;
// an action never holds two chords. Bind returns the displaced occupant of
// chord, if any.
func (t *Table[S]) Bind(chord key.Chord, action *Action[S]) *Action[S] {
	if action == nil {
		return nil
	}

	var displaced *Action[S]
	if prev, ok := t.byChord[chord]; ok && prev != action {
		displaced = prev
		if c, ok := t.byName[prev.name]; ok && c == chord {
			delete(t.byName, prev.name)
		}
	}

	if old, ok := t.byName[action.name]; ok && old != chord {
		if t.byChord[old] == action {
			delete(t.byChord, old)
		}
	}

	t.byChord[chord] = action
	t.byName[action.name] = chord
	return displaced
}

// UnbindAction removes the chord bound to the named action.
// Returns false if the action had no binding.
func (t *Table[S]) UnbindAction(name string) bool {
	chord, ok := t.byName[name]
	if !ok {
		return false
	}
	delete(t.byName, name)
	if a, ok := t.byChord[chord]; ok && a.name == name {
		delete(t.byChord, chord)
	}
	return true
}

// Rebind moves action to chord: its previous chord is released first, then
// chord is bound to it. Returns the action that previously owned chord, if
// any.
func (t *Table[S]) Rebind(action *Action[S], chord key.Chord) *Action[S] {
	if action == nil {
		return nil
	}
	t.UnbindAction(action.name)
	return t.Bind(chord, action)
}

// Lookup returns the action bound to chord, or nil.
// All three chord fields must match.
func (t *Table[S]) Lookup(chord key.Chord) *Action[S] {
	return t.byChord[chord]
}

// ChordFor returns the chord bound to the named action.
func (t *Table[S]) ChordFor(name string) (key.Chord, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Len returns the number of bindings.
func (t *Table[S]) Len() int {
	return len(t.byChord)
}
