package keymap

import "iter"

// NoChord is displayed for an action without a binding.
const NoChord = "None"

// Entry is one row of the bindings list.
type Entry struct {
	Chord  string
	Action string
}

// Iterator walks the registered actions in registration order, pairing each
// with the display form of its chord.
//
// Next returns false once after the last action and rewinds, so the same
// Iterator can be drained again from the start.
type Iterator[S any] struct {
	registry *Registry[S]
	table    *Table[S]
	index    int
}

// Bindings returns an iterator over the bindings list.
func (m *Mapper[S]) Bindings() *Iterator[S] {
	return &Iterator[S]{
		registry: m.registry,
		table:    m.table,
	}
}

// Next returns the next entry.
func (it *Iterator[S]) Next() (Entry, bool) {
	if it.index >= it.registry.Len() {
		it.index = 0
		return Entry{}, false
	}

	a := it.registry.At(it.index)
	it.index++

	e := Entry{Chord: NoChord, Action: a.Name()}
	if c, ok := it.table.ChordFor(a.Name()); ok {
		e.Chord = c.String()
	}
	return e, true
}

// Reset rewinds the iterator to the first action.
func (it *Iterator[S]) Reset() {
	it.index = 0
}

// All yields (chord, action) display pairs from the first action on.
func (m *Mapper[S]) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		it := m.Bindings()
		for {
			e, ok := it.Next()
			if !ok {
				return
			}
			if !yield(e.Chord, e.Action) {
				return
			}
		}
	}
}
