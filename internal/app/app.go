// Package app wires the clicker engine, global hotkeys, configuration
// watcher, and dashboard together.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/penwyp/autotap/clicker"
	"github.com/penwyp/autotap/config"
	"github.com/penwyp/autotap/hotkeys"
	"github.com/penwyp/autotap/logging"
	"github.com/penwyp/autotap/output"
	"github.com/penwyp/autotap/ui"
)

// Options carries wiring choices that are not part of the persistent
// configuration
type Options struct {
	// ConfigPath, when set and existing, is watched for live retuning
	ConfigPath string

	// SummaryPath, when set, receives the final session summary as JSON
	SummaryPath string

	// Injector replaces the OS-level click injector when non-nil
	Injector clicker.Injector

	// Hook replaces the OS-level keyboard hook when non-nil
	Hook hotkeys.Hook
}

// dashboard is the surface Application needs from the terminal UI
type dashboard interface {
	Run() error
	Stop()
	Send(msg tea.Msg)
}

// Application owns the lifecycle of all components
type Application struct {
	config   *config.Config
	opts     Options
	engine   *clicker.Engine
	listener *hotkeys.Listener
	watcher  *config.Watcher
	dash     dashboard

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a fully wired application
func New(cfg *config.Config, opts Options) (*Application, error) {
	ctx, cancel := context.WithCancel(context.Background())

	injector := opts.Injector
	if injector == nil {
		injector = clicker.NewRobotgoInjector()
	}
	hook := opts.Hook
	if hook == nil {
		hook = hotkeys.NewGohookHook()
	}

	engine := clicker.New(
		injector,
		cfg.Clicker.EffectiveDelay(),
		cfg.Clicker.MouseButton(),
	)

	a := &Application{
		config:   cfg,
		opts:     opts,
		engine:   engine,
		listener: hotkeys.NewListener(engine, hook),
		ctx:      ctx,
		cancel:   cancel,
	}

	a.dash = ui.NewApp(ui.Config{
		RefreshRate:   cfg.UI.RefreshRate,
		Theme:         cfg.UI.Theme,
		ShowSpinner:   cfg.UI.ShowSpinner,
		CompactMode:   cfg.UI.CompactMode,
		InitialDelay:  cfg.Clicker.EffectiveDelay(),
		InitialButton: cfg.Clicker.MouseButton(),
	}, engine)

	if opts.ConfigPath != "" {
		if _, err := os.Stat(os.ExpandEnv(opts.ConfigPath)); err == nil {
			watcher, err := config.NewWatcher(opts.ConfigPath, a.onConfigReload)
			if err != nil {
				cancel()
				return nil, fmt.Errorf("failed to create config watcher: %w", err)
			}
			a.watcher = watcher
		} else {
			logging.LogDebugf("config file %s not present, live reload disabled", opts.ConfigPath)
		}
	}

	return a, nil
}

// Run starts all components and blocks until the program ends. The
// returned error reflects the first fatal failure, if any.
func (a *Application) Run() error {
	defer a.cancel()

	// Engine controller loop. runErrCh is buffered so the engine
	// goroutine never blocks handing over its result.
	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- a.engine.Run(a.ctx)
	}()

	// Fan engine events into the dashboard
	go func() {
		for ev := range a.engine.Events() {
			a.dash.Send(ui.EngineEventMsg(ev))
		}
	}()

	// Tell the dashboard to quit once the engine has stopped. Injection
	// failures reach the dashboard through the event stream before the
	// engine exits.
	go func() {
		<-a.engine.Done()
		a.dash.Send(ui.EngineStoppedMsg{})
	}()

	// Global hotkeys; without them the clicker cannot be controlled
	if err := a.listener.Start(); err != nil {
		a.engine.Shutdown()
		<-runErrCh
		return err
	}
	defer a.listener.Stop()

	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			logging.LogWarnf("config watcher failed to start: %v", err)
		} else {
			defer a.watcher.Stop()
		}
	}

	// SIGTERM lands here; SIGINT surfaces as ctrl+c inside the dashboard
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.LogInfof("received signal %v, shutting down", sig)
			a.engine.Shutdown()
		case <-a.ctx.Done():
		}
	}()

	// The dashboard blocks until the engine stops or the user quits it
	defer a.dash.Stop()
	uiErr := a.dash.Run()

	a.engine.Shutdown()
	runErr := <-runErrCh

	if err := a.emitSummary(); err != nil {
		logging.LogWarnf("failed to write session summary: %v", err)
	}

	if runErr != nil {
		return runErr
	}
	return uiErr
}

// onConfigReload pushes revalidated clicker settings into the engine
func (a *Application) onConfigReload(cfg *config.Config) {
	logging.LogInfof("applying reloaded clicker settings: delay=%s cps=%g button=%s",
		cfg.Clicker.Delay, cfg.Clicker.CPS, cfg.Clicker.Button)
	a.engine.Retune(cfg.Clicker.EffectiveDelay(), cfg.Clicker.MouseButton())
}

// emitSummary prints the final session report and optionally writes it
// as JSON
func (a *Application) emitSummary() error {
	snap := a.engine.Snapshot()
	summary := output.BuildSummary(snap, time.Now())

	fmt.Println()
	fmt.Print(summary.Text())

	if a.opts.SummaryPath != "" {
		if err := output.WriteJSON(a.opts.SummaryPath, summary); err != nil {
			return err
		}
		fmt.Printf("Summary written to %s\n", a.opts.SummaryPath)
	}
	return nil
}
