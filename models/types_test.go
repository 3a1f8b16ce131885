package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MouseButton
		wantErr bool
	}{
		{"left", "left", ButtonLeft, false},
		{"right", "right", ButtonRight, false},
		{"middle", "middle", ButtonMiddle, false},
		{"mixed case", "LEFT", ButtonLeft, false},
		{"padded", "  right ", ButtonRight, false},
		{"unknown", "side", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMouseButton(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestMouseButton_InjectorName(t *testing.T) {
	assert.Equal(t, "left", ButtonLeft.InjectorName())
	assert.Equal(t, "right", ButtonRight.InjectorName())
	// robotgo names the middle button "center"
	assert.Equal(t, "center", ButtonMiddle.InjectorName())
}

func TestEngineState_String(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Paused", StatePaused.String())
	assert.Equal(t, "Stopped", StateStopped.String())
	assert.Equal(t, "Unknown", EngineState(99).String())
}

func TestEffectiveDelay(t *testing.T) {
	// CPS overrides delay
	assert.Equal(t, 50*time.Millisecond, EffectiveDelay(time.Second, 20))

	// bare delay passes through
	assert.Equal(t, 100*time.Millisecond, EffectiveDelay(100*time.Millisecond, 0))

	// anything at or below the floor clamps to the floor
	assert.Equal(t, MinClickDelay, EffectiveDelay(0, 0))
	assert.Equal(t, MinClickDelay, EffectiveDelay(-time.Second, 0))
	assert.Equal(t, MinClickDelay, EffectiveDelay(time.Microsecond, 0))
	assert.Equal(t, MinClickDelay, EffectiveDelay(0, 10000))
}

func TestSnapshot_Elapsed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s := Snapshot{StartedAt: now.Add(-90 * time.Second), Taken: now}
	assert.Equal(t, 90*time.Second, s.Elapsed())

	// no session started yet
	assert.Equal(t, time.Duration(0), Snapshot{Taken: now}.Elapsed())

	// snapshot taken before the stamped start never goes negative
	weird := Snapshot{StartedAt: now.Add(time.Minute), Taken: now}
	assert.Equal(t, time.Duration(0), weird.Elapsed())
}
