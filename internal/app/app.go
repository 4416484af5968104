// Package app runs a form of input fields on a terminal.
//
// The form is described by a config.Config. Fields are stacked vertically
// under a label column; Tab and Shift+Tab move the focus, a click focuses
// the field under the mouse, Ctrl+S submits and Esc or Ctrl+C quits.
package app

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/termfield/internal/config"
	"github.com/dshills/termfield/internal/field"
	"github.com/dshills/termfield/internal/input"
	"github.com/dshills/termfield/internal/logging"
	"github.com/dshills/termfield/internal/renderer/backend"
)

// Screen is the terminal a form runs on. backend.Terminal implements it.
type Screen interface {
	backend.Sink

	Init() error
	Shutdown()
	Size() (int, int)
	Clear()
	HideCursor()
	PollEvent() (input.Event, bool)
}

// Options configures the application.
type Options struct {
	// Config describes the form. Defaults to config.Default().
	Config *config.Config

	// ConfigPath is watched for changes when set.
	ConfigPath string

	// Logger receives diagnostics. Defaults to a discarding logger; a
	// full-screen application must not log to the terminal it draws on.
	Logger *logging.Logger
}

// App is a running form.
type App struct {
	screen Screen
	opts   Options
	log    *logging.Logger

	cfg    *config.Config
	styles config.Styles
	fields []*field.Field
	focus  int

	width, height int

	reloads   chan *config.Config
	ready     chan struct{}
	running   atomic.Bool
	submitted bool
}

// New creates an application drawing on screen.
func New(screen Screen, opts Options) (*App, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	a := &App{
		screen:  screen,
		opts:    opts,
		log:     opts.Logger.WithField("session", uuid.NewString()).WithComponent("app"),
		reloads: make(chan *config.Config, 1),
		ready:   make(chan struct{}),
	}
	if err := a.applyConfig(opts.Config); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	return a, nil
}

// Ready is closed once the screen is initialized and the first frame drawn.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Submitted reports whether the form was submitted with Ctrl+S rather than
// abandoned.
func (a *App) Submitted() bool {
	return a.submitted
}

// Run takes over the screen and processes events until the form is
// submitted or abandoned, or ctx is cancelled. The screen is restored
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer a.screen.Shutdown()
	a.screen.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.opts.ConfigPath != "" {
		if err := a.watch(ctx); err != nil {
			// the form still works without live reload
			a.log.Warn("config watcher: %v", err)
		}
	}

	events := make(chan input.Event)
	go a.pollEvents(ctx, events)

	a.width, a.height = a.screen.Size()
	a.layout()
	if err := a.draw(); err != nil {
		return err
	}
	a.log.Info("form started with %d fields", len(a.fields))
	close(a.ready)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) == actionQuit {
				a.log.Info("form closed, submitted=%t", a.submitted)
				return nil
			}

		case cfg := <-a.reloads:
			if err := a.applyConfig(cfg); err != nil {
				a.log.Error("applying reloaded config: %v", err)
				continue
			}
			a.layout()
		}

		if err := a.draw(); err != nil {
			return err
		}
	}
}

// pollEvents forwards screen events until the screen is shut down.
func (a *App) pollEvents(ctx context.Context, out chan<- input.Event) {
	defer close(out)
	for {
		ev, ok := a.screen.PollEvent()
		if !ok {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// watch starts the config watcher for the lifetime of ctx.
func (a *App) watch(ctx context.Context) error {
	w, err := config.NewWatcher(a.opts.ConfigPath, func(cfg *config.Config) {
		select {
		case a.reloads <- cfg:
		case <-ctx.Done():
		}
	}, config.WithLogger(a.log))
	if err != nil {
		return err
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			a.log.Error("config watcher stopped: %v", err)
		}
	}()
	return nil
}
