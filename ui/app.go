package ui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// App runs the dashboard as a Bubble Tea program
type App struct {
	model   Model
	program *tea.Program
	config  Config
	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
}

// NewApp creates a new dashboard instance
func NewApp(cfg Config, engine SnapshotProvider) *App {
	ctx, cancel := context.WithCancel(context.Background())

	model := NewModel(cfg, engine)

	app := &App{
		model:  model,
		config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	// Inline display, no alt screen: the dashboard shares the terminal
	// with whatever the user is doing
	app.program = tea.NewProgram(
		model,
		tea.WithContext(ctx),
	)

	return app
}

// Run starts the dashboard and blocks until it exits
func (a *App) Run() error {
	a.started.Store(true)
	_, err := a.program.Run()
	return err
}

// Stop tears the dashboard down
func (a *App) Stop() {
	if a.program != nil {
		a.program.Quit()
	}
	if a.cancel != nil {
		a.cancel()
	}
}

// Send delivers a message to the running program. Messages sent before
// Run are dropped: the program's receive loop is not up yet and a send
// would block the caller, and the next refresh tick repaints from the
// engine anyway.
func (a *App) Send(msg tea.Msg) {
	if a.program == nil || !a.started.Load() {
		return
	}
	a.program.Send(msg)
}
