package key

import (
	"fmt"
	"strings"
)

// Modifier is the set of modifier keys held with a key.
type Modifier uint8

// Modifier bits. ModNone is the empty set.
const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// displayOrder is the order modifiers are written in, which is also how
// most keyboard shortcut documentation writes them.
var displayOrder = [...]struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// modifierAliases accepts the common spellings, including the single
// letters of the "C-x" form.
var modifierAliases = map[string]Modifier{
	"ctrl": ModCtrl, "control": ModCtrl, "c": ModCtrl,
	"alt": ModAlt, "option": ModAlt, "opt": ModAlt, "a": ModAlt,
	"shift": ModShift, "s": ModShift,
	"meta": ModMeta, "cmd": ModMeta, "command": ModMeta, "super": ModMeta, "win": ModMeta, "m": ModMeta,
}

// Has reports whether every modifier in mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// With returns m plus mod.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m minus mod.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty reports whether no modifier is held.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String joins the held modifiers with "+", e.g. "Ctrl+Shift".
// The empty set is "".
func (m Modifier) String() string {
	var b strings.Builder
	for _, d := range displayOrder {
		if !m.Has(d.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(d.name)
	}
	return b.String()
}

// ParseModifier parses one modifier name, case-insensitively.
func ParseModifier(name string) (Modifier, error) {
	mod, ok := modifierAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(name))
	}
	return mod, nil
}

// ParseModifiers parses a modifier list such as "Ctrl+Alt" or "C-A".
// An empty string is the empty set.
func ParseModifiers(s string) (Modifier, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModNone, nil
	}

	sep := "+"
	if !strings.Contains(s, "+") && strings.Contains(s, "-") {
		sep = "-"
	}

	var mods Modifier
	for _, part := range strings.Split(s, sep) {
		mod, err := ParseModifier(part)
		if err != nil {
			return ModNone, err
		}
		mods |= mod
	}
	return mods, nil
}
