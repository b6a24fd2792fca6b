// Package app runs the toy game: it owns the terminal screen, the frame
// loop and the bindings panel, and feeds terminal input to the keymap
// Mapper.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/robofactory/internal/config"
	"github.com/dshills/robofactory/internal/config/watcher"
	"github.com/dshills/robofactory/internal/game"
	"github.com/dshills/robofactory/internal/host"
	"github.com/dshills/robofactory/internal/input/keymap"
)

// Application ties the game state, the Mapper and the terminal together.
//
// Everything except the event reader goroutine runs on the goroutine that
// called Run, so the Mapper is never entered concurrently.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	screen tcell.Screen

	state  *game.State
	mapper *keymap.Mapper[*game.State]

	// keys tracks keys routed to the Mapper. controls tracks keys the
	// application consumed itself so their autorepeat is not mistaken
	// for a fresh press.
	keys     *host.Tracker
	controls *host.Tracker

	// Index into mapper.Actions() of the highlighted panel row.
	selected int
	message  string

	metrics *Metrics
	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config holds the settings. A nil Config means config.Default().
	Config *config.Config

	// Screen is the terminal to draw on. Nil means a new tcell screen.
	Screen tcell.Screen

	// Logger receives application logs. Nil discards them.
	Logger *slog.Logger
}

// New creates the application and loads its bindings.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, &InitError{Component: "screen", Err: err}
		}
		screen = s
	}

	mapper, err := game.NewMapper(cfg.Bindings.File, keymap.WithLogger(logger.With("component", "keymap")))
	if err != nil {
		return nil, &InitError{Component: "bindings", Err: err}
	}

	return &Application{
		cfg:      cfg,
		logger:   logger,
		screen:   screen,
		state:    game.New(1, 1),
		mapper:   mapper,
		keys:     host.NewTracker(cfg.Input.InitialDelay, cfg.Input.RepeatGap),
		controls: host.NewTracker(cfg.Input.InitialDelay, cfg.Input.RepeatGap),
		metrics:  NewMetrics(),
	}, nil
}

// Run takes over the terminal and runs the frame loop until ctx is done or
// the player quits.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.init(); err != nil {
		return err
	}
	defer app.screen.Fini()

	for chord, action := range app.mapper.All() {
		app.logger.Info("binding", "action", action, "chord", chord)
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go app.screen.ChannelEvents(events, quit)
	defer close(quit)

	var (
		changes   <-chan watcher.Event
		watchErrs <-chan error
	)
	if w := app.startWatcher(); w != nil {
		defer w.Close()
		changes = w.Events()
		watchErrs = w.Errors()
	}

	ticker := time.NewTicker(app.cfg.TickInterval())
	defer ticker.Stop()

	defer func() {
		app.logger.Info("stopped", app.metrics.Snapshot().attrs()...)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleEvent(ev); errors.Is(err, ErrQuit) {
				return nil
			}

		case now := <-ticker.C:
			start := time.Now()
			app.frame(now)
			app.draw()
			app.metrics.RecordFrame(time.Since(start))

		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.fileChanged(change)
			app.draw()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.watchFailed(err)
			app.draw()
		}
	}
}

// init prepares the screen. Split out of Run so tests can drive the
// application one event at a time.
func (app *Application) init() error {
	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	app.screen.EnableMouse()
	app.screen.EnableFocus()
	app.screen.HideCursor()

	w, h := app.screen.Size()
	app.layout(w, h)
	app.state.Recenter()
	app.draw()
	return nil
}

func (app *Application) startWatcher() *watcher.Watcher {
	path := app.cfg.Bindings.File
	if path == "" || !app.cfg.Bindings.Watch {
		return nil
	}

	w, err := watcher.New(watcher.WithLogger(app.logger.With("component", "watcher")))
	if err != nil {
		app.logger.Warn("bindings watch disabled", "err", err)
		return nil
	}
	if err := w.Watch(path); err != nil {
		app.logger.Warn("bindings watch disabled", "path", path, "err", err)
		_ = w.Close()
		return nil
	}
	app.logger.Debug("watching bindings", "path", path)
	return w
}

// fileChanged reloads the bindings file. A file that fails to load leaves
// the current bindings in place.
func (app *Application) fileChanged(ev watcher.Event) {
	if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
		app.logger.Debug("bindings file gone, keeping bindings", "path", ev.Path, "op", ev.Op)
		return
	}
	app.reload()
}

// watchFailed reports a watch error in the status line. The watcher keeps
// running, so later changes still reload.
func (app *Application) watchFailed(err error) {
	app.message = "Watch error: " + err.Error()
}

func (app *Application) reload() {
	path := app.cfg.Bindings.File

	defaults, err := game.Bindings(path)
	if err == nil {
		err = app.mapper.Apply(defaults)
	}
	app.metrics.RecordReload(err == nil)

	if err != nil {
		app.logger.Warn("bindings reload failed", "path", path, "err", err)
		app.message = "Reload failed: " + err.Error()
		return
	}
	app.logger.Info("bindings reloaded", "path", path, "count", len(defaults))
	app.message = "Bindings reloaded"
}

// State returns the game state.
func (app *Application) State() *game.State {
	return app.state
}

// Mapper returns the Mapper driving the game.
func (app *Application) Mapper() *keymap.Mapper[*game.State] {
	return app.mapper
}

// Metrics returns the loop counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// holdTicks converts a hold duration to frame ticks.
func (app *Application) holdTicks(d time.Duration) int {
	return int(d / app.cfg.TickInterval())
}
