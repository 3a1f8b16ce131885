package ui

import (
	"testing"
	"time"
)

func TestApp_SendBeforeRunReturns(t *testing.T) {
	app := NewApp(DefaultConfig, &fakeProvider{snap: runningSnapshot()})

	// The program's receive loop only exists once Run is called; a send
	// before that must be dropped, not block the caller
	done := make(chan struct{})
	go func() {
		app.Send(EngineStoppedMsg{})
		app.Send(EngineEventMsg{})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked before the program was running")
	}
}
