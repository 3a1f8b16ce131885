package hotkeys

import (
	"sync"

	hook "github.com/robotn/gohook"
)

// GohookHook implements Hook on top of the robotn/gohook global event
// tap. One process-wide tap serves all registered keys.
type GohookHook struct {
	mu      sync.Mutex
	started bool
}

// NewGohookHook creates the production hook
func NewGohookHook() *GohookHook {
	return &GohookHook{}
}

// Register binds a handler to key-down events for the given key
func (g *GohookHook) Register(key string, handler func()) {
	hook.Register(hook.KeyDown, []string{key}, func(e hook.Event) {
		handler()
	})
}

// Start installs the tap and pumps its events on a background goroutine
func (g *GohookHook) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return nil
	}
	g.started = true

	events := hook.Start()
	go func() {
		<-hook.Process(events)
	}()

	return nil
}

// Stop tears the tap down
func (g *GohookHook) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.started {
		return
	}
	g.started = false
	hook.End()
}
