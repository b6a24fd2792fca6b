package keymap

import (
	"github.com/dshills/robofactory/internal/input/key"
)

// counter is the external state used by tests: it records every action that
// ran, in order.
type counter struct {
	calls []string
}

func (c *counter) count(name string) int {
	n := 0
	for _, call := range c.calls {
		if call == name {
			n++
		}
	}
	return n
}

func record(name string) HandlerFunc[*counter] {
	return func(c *counter) {
		c.calls = append(c.calls, name)
	}
}

// fakeHost reports a fixed set of held keys.
type fakeHost struct {
	held []key.Code
	mods key.Modifier
}

func (h *fakeHost) HeldKeys() []key.Code          { return h.held }
func (h *fakeHost) ActiveModifiers() key.Modifier { return h.mods }

var (
	space = key.Special(key.KeySpace)
	keyW  = key.Char('w')
	keyS  = key.Char('s')
)
