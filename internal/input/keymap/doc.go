// Package keymap binds keyboard chords to named actions and dispatches
// input to them.
//
// # Key Concepts
//
// Action: a stable name plus a Handler invoked with the caller's state.
//
// Registry: every registered action, in registration order. Append-only.
//
// Table: chord to action bindings. A chord holds at most one action and an
// action holds at most one chord.
//
// Session: the "capture the next key" state used to rebind an action.
//
// Mapper: the entry point the host drives. It owns a Registry, a Table and
// a Session and routes every event either into the Session or through the
// Table to an action.
//
// # Rebinding
//
// While a rebind is pending, input is captured rather than dispatched. The
// captured key is bound with an edge chosen by how long it was held, counted
// in update ticks:
//
//	1-29 ticks   Press
//	30-59 ticks  Sustained
//	60+ ticks    Release
//
// # Usage
//
//	m := keymap.NewMapper[*game.State]()
//	m.RegisterFunc(game.MoveUp, func(s *game.State) { s.MoveBy(0, -game.Step) })
//	_ = m.Bind(key.MustParseChord("W", "held"), game.MoveUp)
//
//	// every frame
//	m.Tick(state, host)
//
//	// every physical key transition
//	m.HandleKeyEvent(state, code, mods, key.Press)
//
//	// rebinding
//	m.BeginRebind("Move Up")
//
// The Mapper is not safe for concurrent use. Hosts call it from a single
// goroutine.
package keymap
