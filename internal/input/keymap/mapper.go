package keymap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dshills/robofactory/internal/input/key"
)

// ErrUnknownAction is returned when a binding names an action that was never
// registered.
var ErrUnknownAction = errors.New("unknown action")

// Host is the per-frame input query the Mapper needs from its host.
type Host interface {
	// HeldKeys returns every key currently held down.
	HeldKeys() []key.Code

	// ActiveModifiers returns the modifier set currently held.
	ActiveModifiers() key.Modifier
}

// Default is one entry of a default bindings list.
type Default struct {
	Chord  key.Chord
	Action string
}

// Option configures a Mapper.
type Option func(*mapperConfig)

type mapperConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report completed rebinds.
func WithLogger(l *slog.Logger) Option {
	return func(c *mapperConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Mapper routes host input to actions and runs the rebind flow.
//
// Every entry point is synchronous. The host must not call the Mapper
// concurrently or re-entrantly from inside an action.
type Mapper[S any] struct {
	registry *Registry[S]
	table    *Table[S]
	session  Session[S]
	logger   *slog.Logger
}

// NewMapper creates a Mapper with no actions and no bindings.
func NewMapper[S any](opts ...Option) *Mapper[S] {
	cfg := mapperConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Mapper[S]{
		registry: NewRegistry[S](),
		table:    NewTable[S](),
		logger:   cfg.logger,
	}
}

// Register adds an action. It starts without a binding.
func (m *Mapper[S]) Register(name string, h Handler[S]) *Action[S] {
	return m.registry.Register(name, h)
}

// RegisterFunc adds an action backed by a plain function.
func (m *Mapper[S]) RegisterFunc(name string, fn func(S)) *Action[S] {
	return m.registry.Register(name, HandlerFunc[S](fn))
}

// Insert registers an action and binds it to chord in one step.
func (m *Mapper[S]) Insert(chord key.Chord, name string, h Handler[S]) *Action[S] {
	a := m.registry.Register(name, h)
	m.table.Bind(chord, a)
	return a
}

// Bind binds chord to the registered action called name, moving the action
// off any chord it held before.
func (m *Mapper[S]) Bind(chord key.Chord, name string) error {
	a := m.registry.Find(name)
	if a == nil {
		return fmt.Errorf("binding %s: %w %q", chord, ErrUnknownAction, name)
	}
	m.rebind(a, chord)
	return nil
}

// Apply binds every entry of defaults. Entries naming unknown actions are
// skipped and reported together; the rest still apply.
func (m *Mapper[S]) Apply(defaults []Default) error {
	var errs []error
	for _, d := range defaults {
		if err := m.Bind(d.Chord, d.Action); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BeginRebind starts capturing a new chord for the named action. Unknown
// names are ignored and no capture starts; the return value reports which
// happened.
func (m *Mapper[S]) BeginRebind(name string) bool {
	a := m.registry.Find(name)
	if a == nil {
		m.logger.Debug("rebind ignored", "action", name, "reason", "unknown action")
		return false
	}
	m.session.Begin(a)
	m.logger.Debug("awaiting key", "action", name)
	return true
}

// CancelRebind abandons a pending capture, leaving bindings untouched.
func (m *Mapper[S]) CancelRebind() bool {
	a, _ := m.session.Waiting()
	if !m.session.Cancel() {
		return false
	}
	m.logger.Debug("rebind cancelled", "action", a.Name())
	return true
}

// Awaiting reports the action waiting for a chord and how many ticks the
// candidate key has been held.
func (m *Mapper[S]) Awaiting() (name string, ticks uint, ok bool) {
	a, ok := m.session.Waiting()
	if !ok {
		return "", 0, false
	}
	return a.Name(), m.session.HeldTicks(), true
}

// Tick is the per-frame entry point. When idle, every held key fires its
// Sustained binding with the current modifiers. While a rebind is pending,
// the capture hold counter advances instead and no action runs.
func (m *Mapper[S]) Tick(state S, host Host) {
	if m.session.Active() {
		m.session.Advance()
		return
	}
	if host == nil {
		return
	}

	mods := host.ActiveModifiers()
	for _, code := range host.HeldKeys() {
		m.Dispatch(state, key.NewChord(code, mods, key.Sustained))
	}
}

// HandleKeyEvent is the entry point for a physical key transition. Hosts
// must not forward auto-repeat presses.
//
// While a rebind is pending the event feeds the capture: a Press starts the
// hold counter and a Release completes the rebind. Otherwise the event is
// dispatched as a chord.
func (m *Mapper[S]) HandleKeyEvent(state S, code key.Code, mods key.Modifier, edge key.Edge) {
	chord := key.NewChord(code, mods, edge)

	if !m.session.Active() {
		m.Dispatch(state, chord)
		return
	}

	switch edge {
	case key.Press:
		m.session.Press()
	case key.Release:
		classified, a, ok := m.session.Release(chord)
		if ok {
			m.rebind(a, classified)
		}
	}
}

// Dispatch invokes the action bound to chord. Returns false, doing nothing,
// when chord is unbound.
func (m *Mapper[S]) Dispatch(state S, chord key.Chord) bool {
	a := m.table.Lookup(chord)
	if a == nil {
		return false
	}
	a.Invoke(state)
	return true
}

// Lookup returns the action bound to chord, or nil.
func (m *Mapper[S]) Lookup(chord key.Chord) *Action[S] {
	return m.table.Lookup(chord)
}

// ChordFor returns the chord bound to the named action.
func (m *Mapper[S]) ChordFor(name string) (key.Chord, bool) {
	return m.table.ChordFor(name)
}

// Defaults returns the current bindings as a default bindings list, in
// registration order. Unbound actions are left out.
func (m *Mapper[S]) Defaults() []Default {
	var defaults []Default
	seen := make(map[string]bool)
	for _, name := range m.registry.Names() {
		if seen[name] {
			continue
		}
		seen[name] = true
		if chord, ok := m.table.ChordFor(name); ok {
			defaults = append(defaults, Default{Chord: chord, Action: name})
		}
	}
	return defaults
}

// Actions returns the registered action names in registration order.
func (m *Mapper[S]) Actions() []string {
	return m.registry.Names()
}

func (m *Mapper[S]) rebind(a *Action[S], chord key.Chord) {
	displaced := m.table.Rebind(a, chord)
	if displaced != nil {
		m.logger.Info("bound", "action", a.Name(), "chord", chord.String(), "displaced", displaced.Name())
		return
	}
	m.logger.Info("bound", "action", a.Name(), "chord", chord.String())
}
