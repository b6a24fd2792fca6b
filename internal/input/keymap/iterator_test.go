package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/robofactory/internal/input/key"
)

func drain(it *Iterator[*counter]) []Entry {
	var out []Entry
	for {
		e, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestIteratorRegistrationOrder(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(keyW, key.ModNone, key.Sustained), "Move Up", record("up"))
	m.Register("Jump", record("jump"))
	m.Insert(key.NewChord(keyS, key.ModCtrl, key.Press), "Save", record("save"))

	want := []Entry{
		{Chord: "W + Held", Action: "Move Up"},
		{Chord: NoChord, Action: "Jump"},
		{Chord: "Ctrl + S + Press", Action: "Save"},
	}

	it := m.Bindings()
	assert.Equal(t, want, drain(it))
	assert.Equal(t, want, drain(it), "a drained iterator starts over")
}

func TestIteratorReset(t *testing.T) {
	m := NewMapper[*counter]()
	m.Register("A", record("A"))
	m.Register("B", record("B"))

	it := m.Bindings()
	e, _ := it.Next()
	assert.Equal(t, "A", e.Action)

	it.Reset()
	e, _ = it.Next()
	assert.Equal(t, "A", e.Action)
}

func TestIteratorEmptyRegistry(t *testing.T) {
	m := NewMapper[*counter]()
	it := m.Bindings()
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Empty(t, drain(it))
}

func TestIteratorReflectsRebinds(t *testing.T) {
	m := NewMapper[*counter]()
	m.Register("Jump", record("Jump"))
	it := m.Bindings()

	e, _ := it.Next()
	assert.Equal(t, NoChord, e.Chord)
	it.Reset()

	m.BeginRebind("Jump")
	m.HandleKeyEvent(&counter{}, space, key.ModShift, key.Press)
	m.HandleKeyEvent(&counter{}, space, key.ModShift, key.Release)

	e, _ = it.Next()
	assert.Equal(t, "Shift + Space + Press", e.Chord)
}

func TestAllSeq(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(keyW, key.ModNone, key.Sustained), "Move Up", record("up"))
	m.Register("Jump", record("jump"))

	var chords, names []string
	for chord, name := range m.All() {
		chords = append(chords, chord)
		names = append(names, name)
	}
	assert.Equal(t, []string{"W + Held", NoChord}, chords)
	assert.Equal(t, []string{"Move Up", "Jump"}, names)

	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
