package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
	ErrUnknownEdge = errors.New("unknown edge")
)

// ParseChord parses a key specification and an edge name into a Chord.
//
// Supported key formats:
//   - Single character: "w", "W", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Space", "F5"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+Up"
func ParseChord(keys, edge string) (Chord, error) {
	code, mods, err := ParseKeys(keys)
	if err != nil {
		return Chord{}, err
	}
	e, err := ParseEdge(edge)
	if err != nil {
		return Chord{}, fmt.Errorf("parsing edge of %q: %w", keys, err)
	}
	return Chord{Code: code, Mods: mods, Edge: e}, nil
}

// ParseKeys parses a key specification like "Ctrl+S" into a Code and its
// modifiers.
func ParseKeys(spec string) (Code, Modifier, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Code{}, ModNone, ErrEmptySpec
	}

	// A lone "+" is the plus key, and "Ctrl++" is Ctrl with plus.
	if spec == "+" {
		return Char('+'), ModNone, nil
	}
	keyPart := spec
	var mods Modifier
	if i := strings.LastIndex(spec[:len(spec)-1], "+"); i >= 0 {
		keyPart = spec[i+1:]
		var err error
		if mods, err = ParseModifiers(spec[:i]); err != nil {
			return Code{}, ModNone, err
		}
		if mods.IsEmpty() {
			return Code{}, ModNone, fmt.Errorf("%w: empty modifier in %q", ErrInvalidSpec, spec)
		}
	}

	code, err := ParseCode(keyPart)
	if err != nil {
		return Code{}, ModNone, err
	}
	return code, mods, nil
}

// ParseCode parses a single key name or character.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, ErrInvalidSpec
	}

	if k := KeyFromName(s); k != KeyNone {
		return Special(k), nil
	}

	runes := []rune(s)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		return Char(runes[0]), nil
	}

	return Code{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, s)
}

// MustParseChord parses a chord and panics on error.
// Use only for known-valid specs in initialization code and tests.
func MustParseChord(keys, edge string) Chord {
	c, err := ParseChord(keys, edge)
	if err != nil {
		panic("invalid chord: " + keys + " " + edge + ": " + err.Error())
	}
	return c
}
