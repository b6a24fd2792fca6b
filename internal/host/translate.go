package host

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/robofactory/internal/input/key"
)

// Translate converts a tcell key event to a key code and modifier set.
// The boolean is false for keys that have no Code equivalent.
//
// Control characters are reported as their letter with Ctrl held, and
// upper-case letters as the lower-case letter with Shift held, so that
// Ctrl+W and Shift+W parse and display the same way they are typed.
func Translate(ev *tcell.EventKey) (key.Code, key.Modifier, bool) {
	mods := convertMod(ev.Modifiers())

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == 0 {
			return key.Code{}, key.ModNone, false
		}
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return key.Char(r), mods, true

	case k == tcell.KeyCtrlSpace:
		return key.Special(key.KeySpace), mods.With(key.ModCtrl), true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Char('a' + rune(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl), true

	case k == tcell.KeyBacktab:
		return key.Special(key.KeyTab), mods.With(key.ModShift), true
	}

	special := convertKey(k)
	if special == key.KeyNone {
		return key.Code{}, key.ModNone, false
	}
	return key.Special(special), mods, true
}

func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyPause:
		return key.KeyPause
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	}
	return key.KeyNone
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
