package clicker

import (
	"time"

	"github.com/penwyp/autotap/models"
)

// commandKind enumerates the control operations the engine accepts
type commandKind int

const (
	cmdToggle commandKind = iota
	cmdPauseResume
	cmdShowStats
	cmdEmergencyStop
	cmdShutdown
	cmdRetune
	cmdSnapshot
)

// command is a single control message. All engine state lives in the
// controller loop; hotkeys, the UI, and the config watcher only ever
// send these.
type command struct {
	kind   commandKind
	delay  time.Duration
	button models.MouseButton
	reply  chan models.Snapshot
}

// EventKind classifies engine events
type EventKind int

const (
	// EventState is published on every lifecycle transition
	EventState EventKind = iota

	// EventStats is published when statistics display is requested
	EventStats

	// EventError is published when click injection fails
	EventError
)

// Event is what the engine publishes to its subscribers
type Event struct {
	Kind     EventKind
	Snapshot models.Snapshot
	Err      error
}

// Toggle starts clicking when idle and stops it when running or paused
func (e *Engine) Toggle() {
	e.send(command{kind: cmdToggle})
}

// PauseResume pauses a running session or resumes a paused one
func (e *Engine) PauseResume() {
	e.send(command{kind: cmdPauseResume})
}

// ShowStats asks the engine to publish a statistics event
func (e *Engine) ShowStats() {
	e.send(command{kind: cmdShowStats})
}

// EmergencyStop halts clicking and shuts the engine down regardless of
// current state
func (e *Engine) EmergencyStop() {
	e.send(command{kind: cmdEmergencyStop})
}

// Shutdown stops clicking and ends the controller loop gracefully
func (e *Engine) Shutdown() {
	e.send(command{kind: cmdShutdown})
}

// Retune applies new click timing and button without restarting the
// session. Delays below the minimum are clamped.
func (e *Engine) Retune(delay time.Duration, button models.MouseButton) {
	e.send(command{kind: cmdRetune, delay: delay, button: button})
}

// Snapshot returns a copy of the current engine state. It blocks until
// the controller loop services the request; after shutdown it returns
// the final snapshot.
func (e *Engine) Snapshot() models.Snapshot {
	reply := make(chan models.Snapshot, 1)
	select {
	case e.cmds <- command{kind: cmdSnapshot, reply: reply}:
		select {
		case snap := <-reply:
			return snap
		case <-e.done:
			return e.finalSnapshot()
		}
	case <-e.done:
		return e.finalSnapshot()
	}
}

// send delivers a command unless the engine has already shut down
func (e *Engine) send(cmd command) {
	select {
	case e.cmds <- cmd:
	case <-e.done:
	}
}
