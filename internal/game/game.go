// Package game is a toy game driven by bindable actions: a dot moved around
// a bounded field.
package game

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/dshills/robofactory/internal/input/keymap"
)

// Action names.
const (
	MoveUp    = "Move Up"
	MoveDown  = "Move Down"
	MoveLeft  = "Move Left"
	MoveRight = "Move Right"
	Center    = "Center"
)

// Step is how far one action moves the dot.
const Step = 1

//go:embed bindings.toml
var defaultBindings []byte

// State is the game world. Positions are cells inside a Width x Height
// field, origin top-left.
type State struct {
	X, Y          int
	Width, Height int
}

// New creates a state with the dot centred in a width x height field.
func New(width, height int) *State {
	s := &State{}
	s.Resize(width, height)
	s.Recenter()
	return s
}

// Resize changes the field size, keeping the dot inside it.
func (s *State) Resize(width, height int) {
	s.Width = max(width, 1)
	s.Height = max(height, 1)
	s.clamp()
}

// MoveBy moves the dot by dx, dy, stopping at the field edge.
func (s *State) MoveBy(dx, dy int) {
	s.X += dx
	s.Y += dy
	s.clamp()
}

// MoveTo places the dot at x, y, stopping at the field edge.
func (s *State) MoveTo(x, y int) {
	s.X, s.Y = x, y
	s.clamp()
}

// Recenter puts the dot in the middle of the field.
func (s *State) Recenter() {
	s.X = s.Width / 2
	s.Y = s.Height / 2
}

func (s *State) clamp() {
	s.X = min(max(s.X, 0), s.Width-1)
	s.Y = min(max(s.Y, 0), s.Height-1)
}

// Register adds the game's actions to m, unbound.
func Register(m *keymap.Mapper[*State]) {
	m.RegisterFunc(MoveUp, func(s *State) { s.MoveBy(0, -Step) })
	m.RegisterFunc(MoveDown, func(s *State) { s.MoveBy(0, Step) })
	m.RegisterFunc(MoveLeft, func(s *State) { s.MoveBy(-Step, 0) })
	m.RegisterFunc(MoveRight, func(s *State) { s.MoveBy(Step, 0) })
	m.RegisterFunc(Center, (*State).Recenter)
}

// DefaultBindings returns the built-in bindings list.
func DefaultBindings() ([]keymap.Default, error) {
	defaults, err := keymap.Load(bytes.NewReader(defaultBindings), keymap.FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("built-in bindings: %w", err)
	}
	return defaults, nil
}

// Bindings returns the bindings list from path, or the built-in list when
// path is empty.
func Bindings(path string) ([]keymap.Default, error) {
	if path == "" {
		return DefaultBindings()
	}
	return keymap.LoadFile(path)
}

// NewMapper creates a Mapper with the game's actions registered and bound
// from the bindings file at path (built-in bindings when empty).
func NewMapper(path string, opts ...keymap.Option) (*keymap.Mapper[*State], error) {
	m := keymap.NewMapper[*State](opts...)
	Register(m)

	defaults, err := Bindings(path)
	if err != nil {
		return nil, err
	}
	if err := m.Apply(defaults); err != nil {
		return nil, err
	}
	return m, nil
}
