package clicker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/autotap/logging"
	"github.com/penwyp/autotap/models"
)

// Engine drives the click loop. A single controller goroutine owns all
// mutable state (lifecycle, counter, timing) and consumes one command
// channel; there are no shared booleans and no locks on the hot path.
type Engine struct {
	injector Injector

	cmds   chan command
	events chan Event
	done   chan struct{}

	// Owned exclusively by the Run goroutine
	state      models.EngineState
	clickCount int64
	startedAt  time.Time
	delay      time.Duration
	button     models.MouseButton

	finalMu sync.Mutex
	final   models.Snapshot
}

// New creates an engine clicking the given button at the given interval.
// The delay is clamped to models.MinClickDelay.
func New(injector Injector, delay time.Duration, button models.MouseButton) *Engine {
	if delay < models.MinClickDelay {
		delay = models.MinClickDelay
	}
	if !button.Valid() {
		button = models.ButtonLeft
	}

	return &Engine{
		injector: injector,
		cmds:     make(chan command),
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		state:    models.StateIdle,
		delay:    delay,
		button:   button,
	}
}

// Events returns the channel on which the engine publishes state
// transitions, statistics, and errors
func (e *Engine) Events() <-chan Event {
	return e.events
}

// Done is closed when the controller loop has exited
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Run executes the controller loop until shutdown, emergency stop,
// context cancellation, or an injection failure. It must be called
// exactly once.
func (e *Engine) Run(ctx context.Context) error {
	defer e.finish()

	var ticker *time.Ticker
	var tickCh <-chan time.Time

	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
		}
		tickCh = nil
	}
	startTicker := func() {
		stopTicker()
		ticker = time.NewTicker(e.delay)
		tickCh = ticker.C
	}
	defer stopTicker()

	for {
		select {
		case <-ctx.Done():
			e.transition(models.StateStopped)
			return nil

		case <-tickCh:
			if err := e.injector.Click(e.button); err != nil {
				stopTicker()
				e.transition(models.StateStopped)
				e.publish(Event{Kind: EventError, Snapshot: e.snapshot(), Err: err})
				return fmt.Errorf("click injection failed: %w", err)
			}
			e.clickCount++

		case cmd := <-e.cmds:
			switch cmd.kind {
			case cmdToggle:
				if e.state == models.StateRunning || e.state == models.StatePaused {
					stopTicker()
					e.transition(models.StateIdle)
					logging.LogInfof("clicking stopped after %d clicks", e.clickCount)
				} else {
					e.startedAt = time.Now()
					startTicker()
					e.transition(models.StateRunning)
					logging.LogInfof("clicking started: button=%s delay=%s", e.button, e.delay)
				}

			case cmdPauseResume:
				switch e.state {
				case models.StateRunning:
					stopTicker()
					e.transition(models.StatePaused)
					logging.LogInfof("clicking paused at %d clicks", e.clickCount)
				case models.StatePaused:
					startTicker()
					e.transition(models.StateRunning)
					logging.LogInfof("clicking resumed")
				default:
					// Nothing to pause; surface current state anyway
					// so the UI can hint at the start key
					e.publish(Event{Kind: EventState, Snapshot: e.snapshot()})
				}

			case cmdShowStats:
				e.publish(Event{Kind: EventStats, Snapshot: e.snapshot()})

			case cmdRetune:
				e.retune(cmd.delay, cmd.button)
				if e.state == models.StateRunning {
					startTicker()
				}
				e.publish(Event{Kind: EventState, Snapshot: e.snapshot()})

			case cmdSnapshot:
				cmd.reply <- e.snapshot()

			case cmdEmergencyStop:
				stopTicker()
				e.transition(models.StateStopped)
				logging.LogWarnf("emergency stop after %d clicks", e.clickCount)
				return nil

			case cmdShutdown:
				stopTicker()
				e.transition(models.StateStopped)
				logging.LogInfof("engine shut down after %d clicks", e.clickCount)
				return nil
			}
		}
	}
}

// retune applies new timing and button, clamping the delay
func (e *Engine) retune(delay time.Duration, button models.MouseButton) {
	if delay >= models.MinClickDelay {
		e.delay = delay
	} else if delay > 0 {
		e.delay = models.MinClickDelay
	}
	if button.Valid() {
		e.button = button
	}
	logging.LogDebugf("engine retuned: button=%s delay=%s", e.button, e.delay)
}

// snapshot copies the current state for consumers
func (e *Engine) snapshot() models.Snapshot {
	return models.Snapshot{
		State:      e.state,
		ClickCount: e.clickCount,
		StartedAt:  e.startedAt,
		Delay:      e.delay,
		Button:     e.button,
		Taken:      time.Now(),
	}
}

// transition changes state and publishes the new snapshot
func (e *Engine) transition(state models.EngineState) {
	e.state = state
	e.publish(Event{Kind: EventState, Snapshot: e.snapshot()})
}

// publish delivers an event without ever blocking the controller loop.
// A slow consumer loses events rather than stalling clicking.
func (e *Engine) publish(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// finish records the final snapshot and releases waiters
func (e *Engine) finish() {
	e.finalMu.Lock()
	e.final = e.snapshot()
	e.finalMu.Unlock()
	close(e.done)
	close(e.events)
}

// finalSnapshot returns the state as it was when the loop exited
func (e *Engine) finalSnapshot() models.Snapshot {
	e.finalMu.Lock()
	defer e.finalMu.Unlock()
	return e.final
}
