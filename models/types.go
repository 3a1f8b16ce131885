package models

import (
	"fmt"
	"strings"
	"time"
)

// MouseButton identifies which mouse button the clicker presses
type MouseButton string

const (
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// ParseMouseButton parses a user-supplied button name
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	default:
		return "", fmt.Errorf("invalid mouse button: %q (valid options: left, right, middle)", s)
	}
}

// String returns the canonical button name
func (b MouseButton) String() string {
	return string(b)
}

// Valid reports whether the button is one of the supported values
func (b MouseButton) Valid() bool {
	switch b {
	case ButtonLeft, ButtonRight, ButtonMiddle:
		return true
	}
	return false
}

// InjectorName returns the name the OS injection layer expects.
// robotgo calls the middle button "center".
func (b MouseButton) InjectorName() string {
	if b == ButtonMiddle {
		return "center"
	}
	return string(b)
}

// EngineState represents the clicker engine lifecycle state
type EngineState int

const (
	StateIdle EngineState = iota
	StateRunning
	StatePaused
	StateStopped
)

// String returns a human-readable state label
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Snapshot is an immutable copy of engine state handed to the UI and
// statistics layers. The engine publishes one on every transition and on
// each stats tick; consumers never see the live state.
type Snapshot struct {
	State      EngineState   `json:"state"`
	ClickCount int64         `json:"click_count"`
	StartedAt  time.Time     `json:"started_at"`
	Delay      time.Duration `json:"delay"`
	Button     MouseButton   `json:"button"`
	Taken      time.Time     `json:"taken"`
}

// Clicking reports whether clicks are being issued in this state
func (s Snapshot) Clicking() bool {
	return s.State == StateRunning
}

// Elapsed returns the session runtime at the snapshot instant. Zero when
// no session has started.
func (s Snapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	ref := s.Taken
	if ref.IsZero() {
		ref = time.Now()
	}
	if ref.Before(s.StartedAt) {
		return 0
	}
	return ref.Sub(s.StartedAt)
}
