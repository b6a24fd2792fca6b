package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/robofactory/internal/host"
	"github.com/dshills/robofactory/internal/input/key"
)

// handleEvent processes one terminal event. Returns ErrQuit if the
// application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	app.metrics.RecordInput()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
		app.layout(ev.Size())
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			app.controls.ReleaseAll()
			for _, r := range app.keys.ReleaseAll() {
				app.release(r)
			}
		}
	}
	return nil
}

// handleKey routes a key-down event. Application controls are consumed
// here; every other fresh press goes to the Mapper.
func (app *Application) handleKey(ev *tcell.EventKey) error {
	code, mods, ok := host.Translate(ev)
	if !ok {
		return nil
	}
	if code == key.Char('c') && mods == key.ModCtrl {
		return ErrQuit
	}
	if app.control(code, mods, ev.When()) {
		return nil
	}

	if app.keys.Press(code, mods, ev.When()) {
		return nil
	}
	app.mapper.HandleKeyEvent(app.state, code, mods, key.Press)
	return nil
}

// control handles the panel keys and reports whether the key was consumed.
func (app *Application) control(code key.Code, mods key.Modifier, when time.Time) bool {
	// Autorepeat of a key the application already consumed.
	if app.controls.IsHeld(code) {
		app.controls.Press(code, mods, when)
		return true
	}

	_, _, awaiting := app.mapper.Awaiting()
	switch {
	case awaiting && code == key.Special(key.KeyEscape) && mods.IsEmpty():
		if app.mapper.CancelRebind() {
			app.message = "Rebind cancelled"
		}
	case awaiting:
		return false
	case code == key.Special(key.KeyTab) && mods.IsEmpty():
		app.moveSelection(1)
	case code == key.Special(key.KeyTab) && mods == key.ModShift:
		app.moveSelection(-1)
	case code == key.Special(key.KeyEnter) && mods.IsEmpty():
		app.beginRebind()
	default:
		return false
	}

	app.controls.Press(code, mods, when)
	return true
}

func (app *Application) moveSelection(delta int) {
	n := len(app.mapper.Actions())
	if n == 0 {
		return
	}
	app.selected = ((app.selected+delta)%n + n) % n
}

func (app *Application) beginRebind() {
	actions := app.mapper.Actions()
	if app.selected >= len(actions) {
		return
	}
	if app.mapper.BeginRebind(actions[app.selected]) {
		app.message = ""
	}
}

func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if x < app.state.Width && y < app.state.Height {
		app.state.MoveTo(x, y)
	}
}

// frame advances the game by one tick at time now.
//
// While a rebind is pending the per-frame Tick is withheld: a terminal key
// is only known to have been released once its autorepeat stops, so the
// hold is measured by the Tracker and replayed as ticks on release.
func (app *Application) frame(now time.Time) {
	app.controls.Expire(now)
	for _, r := range app.keys.Expire(now) {
		app.release(r)
	}

	if _, _, awaiting := app.mapper.Awaiting(); awaiting {
		return
	}
	app.mapper.Tick(app.state, app.keys)
}

// release forwards a key-up to the Mapper.
func (app *Application) release(r host.Release) {
	name, _, awaiting := app.mapper.Awaiting()
	if !awaiting {
		app.mapper.HandleKeyEvent(app.state, r.Code, r.Mods, key.Release)
		return
	}

	for range app.holdTicks(r.Held) {
		app.mapper.Tick(app.state, app.keys)
	}
	app.mapper.HandleKeyEvent(app.state, r.Code, r.Mods, key.Release)

	if _, _, still := app.mapper.Awaiting(); still {
		return
	}
	if chord, ok := app.mapper.ChordFor(name); ok {
		app.message = fmt.Sprintf("Bound: %s to %s", name, chord)
	}
}
