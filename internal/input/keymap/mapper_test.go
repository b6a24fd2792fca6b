package keymap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/robofactory/internal/input/key"
)

func TestMapperRebindScenarioSustained(t *testing.T) {
	m := NewMapper[*counter]()
	m.Register("Jump", record("Jump"))
	state := &counter{}
	host := &fakeHost{}

	require.True(t, m.BeginRebind("Jump"))
	m.HandleKeyEvent(state, space, key.ModNone, key.Press)
	host.held = []key.Code{space}
	for range 45 {
		m.Tick(state, host)
	}
	host.held = nil
	m.HandleKeyEvent(state, space, key.ModNone, key.Release)

	c, ok := m.ChordFor("Jump")
	require.True(t, ok)
	assert.Equal(t, key.NewChord(space, key.ModNone, key.Sustained), c)
	assert.Empty(t, state.calls, "no action runs while capturing")

	_, _, awaiting := m.Awaiting()
	assert.False(t, awaiting)
}

func TestMapperRebindClassification(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
		want  key.Edge
	}{
		{"tap", 0, key.Press},
		{"short hold", 28, key.Press},
		{"medium hold", 29, key.Sustained},
		{"long hold", 59, key.Release},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper[*counter]()
			m.Register("Jump", record("Jump"))
			state := &counter{}

			m.BeginRebind("Jump")
			m.HandleKeyEvent(state, keyW, key.ModCtrl, key.Press)
			for range tt.ticks {
				m.Tick(state, nil)
			}
			m.HandleKeyEvent(state, keyW, key.ModCtrl, key.Release)

			c, ok := m.ChordFor("Jump")
			require.True(t, ok)
			assert.Equal(t, key.NewChord(keyW, key.ModCtrl, tt.want), c)
		})
	}
}

func TestMapperReleaseWithoutPressKeepsReleaseEdge(t *testing.T) {
	m := NewMapper[*counter]()
	m.Register("Jump", record("Jump"))
	state := &counter{}

	m.BeginRebind("Jump")
	m.Tick(state, nil)
	m.HandleKeyEvent(state, keyS, key.ModNone, key.Release)

	c, ok := m.ChordFor("Jump")
	require.True(t, ok)
	assert.Equal(t, key.NewChord(keyS, key.ModNone, key.Release), c)
}

func TestMapperDispatchEdgeExact(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(space, key.ModNone, key.Press), "Jump", record("Jump"))
	state := &counter{}

	assert.True(t, m.Dispatch(state, key.NewChord(space, key.ModNone, key.Press)))
	assert.Equal(t, 1, state.count("Jump"))

	assert.False(t, m.Dispatch(state, key.NewChord(space, key.ModNone, key.Sustained)))
	assert.Equal(t, 1, state.count("Jump"))
}

func TestMapperHandleKeyEventDispatchesWhenIdle(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(space, key.ModNone, key.Press), "Jump", record("Jump"))
	m.Insert(key.NewChord(space, key.ModNone, key.Release), "Land", record("Land"))
	state := &counter{}

	m.HandleKeyEvent(state, space, key.ModNone, key.Press)
	m.HandleKeyEvent(state, space, key.ModNone, key.Release)
	m.HandleKeyEvent(state, keyW, key.ModNone, key.Press)

	assert.Equal(t, []string{"Jump", "Land"}, state.calls)
}

func TestMapperTickFiresSustainedBindings(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(keyW, key.ModNone, key.Sustained), "Up", record("Up"))
	m.Insert(key.NewChord(keyS, key.ModShift, key.Sustained), "Run", record("Run"))
	state := &counter{}
	host := &fakeHost{held: []key.Code{keyW, keyS}}

	m.Tick(state, host)
	assert.Equal(t, []string{"Up"}, state.calls)

	host.mods = key.ModShift
	m.Tick(state, host)
	assert.Equal(t, []string{"Up", "Run"}, state.calls)
}

func TestMapperTickWhileAwaitingDoesNotDispatch(t *testing.T) {
	m := NewMapper[*counter]()
	m.Insert(key.NewChord(keyW, key.ModNone, key.Sustained), "Up", record("Up"))
	m.Register("Jump", record("Jump"))
	state := &counter{}
	host := &fakeHost{held: []key.Code{keyW}}

	m.BeginRebind("Jump")
	m.HandleKeyEvent(state, keyW, key.ModNone, key.Press)
	m.Tick(state, host)
	m.Tick(state, host)

	assert.Empty(t, state.calls)
	name, ticks, ok := m.Awaiting()
	assert.True(t, ok)
	assert.Equal(t, "Jump", name)
	assert.Equal(t, uint(3), ticks)
}

func TestMapperBeginRebindUnknown(t *testing.T) {
	m := NewMapper[*counter]()
	chord := key.NewChord(space, key.ModNone, key.Press)
	m.Insert(chord, "Jump", record("Jump"))
	state := &counter{}

	assert.False(t, m.BeginRebind("Unknown"))
	_, _, ok := m.Awaiting()
	assert.False(t, ok)

	m.HandleKeyEvent(state, space, key.ModNone, key.Press)
	assert.Equal(t, 1, state.count("Jump"), "bindings still dispatch")
	c, ok := m.ChordFor("Jump")
	assert.True(t, ok)
	assert.Equal(t, chord, c)
}

func TestMapperCancelRebind(t *testing.T) {
	m := NewMapper[*counter]()
	chord := key.NewChord(space, key.ModNone, key.Press)
	m.Insert(chord, "Jump", record("Jump"))
	state := &counter{}

	assert.False(t, m.CancelRebind())

	m.BeginRebind("Jump")
	m.HandleKeyEvent(state, keyW, key.ModNone, key.Press)
	assert.True(t, m.CancelRebind())

	m.HandleKeyEvent(state, keyW, key.ModNone, key.Release)
	c, _ := m.ChordFor("Jump")
	assert.Equal(t, chord, c, "cancelled capture leaves the binding alone")
}

func TestMapperRebindStealsChord(t *testing.T) {
	m := NewMapper[*counter]()
	chord := key.NewChord(space, key.ModNone, key.Press)
	m.Insert(chord, "Jump", record("Jump"))
	m.Register("Duck", record("Duck"))
	state := &counter{}

	m.BeginRebind("Duck")
	m.HandleKeyEvent(state, space, key.ModNone, key.Press)
	m.HandleKeyEvent(state, space, key.ModNone, key.Release)

	m.Dispatch(state, chord)
	assert.Equal(t, []string{"Duck"}, state.calls)
	_, ok := m.ChordFor("Jump")
	assert.False(t, ok)
	assert.Equal(t, []string{"Jump", "Duck"}, m.Actions())
}

func TestMapperBindAndApply(t *testing.T) {
	m := NewMapper[*counter]()
	m.RegisterFunc("Up", func(c *counter) { c.calls = append(c.calls, "Up") })
	m.RegisterFunc("Down", func(c *counter) { c.calls = append(c.calls, "Down") })

	err := m.Bind(key.NewChord(keyW, key.ModNone, key.Sustained), "Sideways")
	assert.ErrorIs(t, err, ErrUnknownAction)

	err = m.Apply([]Default{
		{Chord: key.NewChord(keyW, key.ModNone, key.Sustained), Action: "Up"},
		{Chord: key.NewChord(keyS, key.ModNone, key.Sustained), Action: "Down"},
		{Chord: key.NewChord(space, key.ModNone, key.Press), Action: "Jump"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Contains(t, err.Error(), `"Jump"`)

	state := &counter{}
	m.Tick(state, &fakeHost{held: []key.Code{keyW, keyS}})
	assert.Equal(t, []string{"Up", "Down"}, state.calls)
}

func TestMapperLogsCompletedRebind(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := NewMapper[*counter](WithLogger(logger))
	m.Insert(key.NewChord(space, key.ModNone, key.Press), "Jump", record("Jump"))
	m.Register("Duck", record("Duck"))

	m.BeginRebind("Duck")
	m.HandleKeyEvent(&counter{}, space, key.ModNone, key.Press)
	m.HandleKeyEvent(&counter{}, space, key.ModNone, key.Release)

	out := buf.String()
	assert.Contains(t, out, "msg=bound")
	assert.Contains(t, out, "action=Duck")
	assert.Contains(t, out, "displaced=Jump")
}

func TestMapperDefaults(t *testing.T) {
	m := NewMapper[*counter]()
	m.Register("Up", record("Up"))
	m.Register("Idle", record("Idle"))
	m.Register("Jump", record("Jump"))
	m.Register("Up", record("Up again"))

	assert.Empty(t, m.Defaults())

	want := []Default{
		{Chord: key.NewChord(keyW, key.ModNone, key.Sustained), Action: "Up"},
		{Chord: key.NewChord(space, key.ModShift, key.Release), Action: "Jump"},
	}
	require.NoError(t, m.Apply([]Default{want[1], want[0]}))
	assert.Equal(t, want, m.Defaults())
}
