package key

import (
	"testing"
)

func TestChordString(t *testing.T) {
	tests := []struct {
		name  string
		chord Chord
		want  string
	}{
		{"no modifier", NewChord(Char('w'), ModNone, Sustained), "W + Held"},
		{"ctrl", NewChord(Char('s'), ModCtrl, Press), "Ctrl + S + Press"},
		{"two modifiers", NewChord(Special(KeyUp), ModCtrl|ModShift, Release), "Ctrl+Shift + Up + Release"},
		{"space", NewChord(Char(' '), ModNone, Press), "Space + Press"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chord.String(); got != tt.want {
				t.Errorf("Chord.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChordEquality(t *testing.T) {
	a := NewChord(Char('w'), ModNone, Press)
	b := NewChord(Char('W'), ModNone, Press)
	if a != b {
		t.Error("chords with the same code, modifiers and edge must be equal")
	}
	if a == a.WithEdge(Sustained) {
		t.Error("chords that differ only in edge must be distinct")
	}

	m := map[Chord]int{a: 1}
	if _, ok := m[a.WithEdge(Release)]; ok {
		t.Error("map lookup must consider the edge")
	}
}

func TestChordKeysRoundTrip(t *testing.T) {
	chords := []Chord{
		NewChord(Char('w'), ModNone, Sustained),
		NewChord(Char('s'), ModCtrl|ModShift, Press),
		NewChord(Special(KeyF4), ModAlt, Release),
		NewChord(Special(KeySpace), ModNone, Press),
	}

	for _, c := range chords {
		t.Run(c.String(), func(t *testing.T) {
			text, err := c.Edge.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText() error = %v", err)
			}
			got, err := ParseChord(c.Keys(), string(text))
			if err != nil {
				t.Fatalf("ParseChord(%q, %q) error = %v", c.Keys(), text, err)
			}
			if got != c {
				t.Errorf("ParseChord(%q) = %v, want %v", c.Keys(), got, c)
			}
		})
	}
}
