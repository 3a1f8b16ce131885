// Package hotkeys turns process-wide key presses into clicker commands.
// The bindings are global: they fire no matter which window has focus.
package hotkeys

import (
	"fmt"

	"github.com/penwyp/autotap/logging"
)

// Hotkey assignments
const (
	KeyToggle        = "1"
	KeyPauseResume   = "2"
	KeyStats         = "3"
	KeyExit          = "0"
	KeyEmergencyStop = "esc"
)

// Commander is the engine control surface the listener drives
type Commander interface {
	Toggle()
	PauseResume()
	ShowStats()
	EmergencyStop()
	Shutdown()
}

// Hook abstracts the OS-level global key subscription so dispatch can be
// tested without installing a real event tap
type Hook interface {
	// Register binds a handler to a key-down event for the given key
	Register(key string, handler func())

	// Start begins delivering events. It returns once the hook is
	// installed; delivery happens on a background goroutine.
	Start() error

	// Stop tears the hook down
	Stop()
}

// Listener wires the hotkey table to an engine
type Listener struct {
	hook   Hook
	engine Commander
}

// NewListener creates a listener dispatching to the given engine
func NewListener(engine Commander, hook Hook) *Listener {
	return &Listener{
		hook:   hook,
		engine: engine,
	}
}

// Start registers all hotkeys and installs the hook. A failure here is
// fatal to the program: without the hook there is no way to control the
// clicker.
func (l *Listener) Start() error {
	l.hook.Register(KeyToggle, func() {
		logging.LogDebugf("hotkey: toggle")
		l.engine.Toggle()
	})
	l.hook.Register(KeyPauseResume, func() {
		logging.LogDebugf("hotkey: pause/resume")
		l.engine.PauseResume()
	})
	l.hook.Register(KeyStats, func() {
		logging.LogDebugf("hotkey: show stats")
		l.engine.ShowStats()
	})
	l.hook.Register(KeyExit, func() {
		logging.LogDebugf("hotkey: exit")
		l.engine.Shutdown()
	})
	l.hook.Register(KeyEmergencyStop, func() {
		logging.LogDebugf("hotkey: emergency stop")
		l.engine.EmergencyStop()
	})

	if err := l.hook.Start(); err != nil {
		return fmt.Errorf("failed to install global hotkey hook: %w", err)
	}

	logging.LogInfof("global hotkeys active: %s start/stop, %s pause/resume, %s stats, %s exit, %s emergency stop",
		KeyToggle, KeyPauseResume, KeyStats, KeyExit, KeyEmergencyStop)
	return nil
}

// Stop removes the global hook
func (l *Listener) Stop() {
	l.hook.Stop()
}
