package input

import (
	"testing"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  string
		want interface{}
	}{
		{key: "ArrowUp", want: &types.DirectionCommand{Direction: types.DirectionUp}},
		{key: "w", want: &types.DirectionCommand{Direction: types.DirectionUp}},
		{key: "S", want: &types.DirectionCommand{Direction: types.DirectionDown}},
		{key: "ArrowLeft", want: &types.DirectionCommand{Direction: types.DirectionLeft}},
		{key: "d", want: &types.DirectionCommand{Direction: types.DirectionRight}},
		{key: " ", want: &types.TogglePauseCommand{}},
		{key: "Enter", want: &types.StartCommand{}},
		{key: "r", want: &types.RestartCommand{}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := MapKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := MapKey("x")
	assert.False(t, ok)
}

func TestMapSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   types.Direction
		wantOK bool
	}{
		{name: "below threshold", dx: 30, dy: -30, wantOK: false},
		{name: "right", dx: 31, dy: 10, want: types.DirectionRight, wantOK: true},
		{name: "left", dx: -80, dy: 40, want: types.DirectionLeft, wantOK: true},
		{name: "down", dx: 5, dy: 45, want: types.DirectionDown, wantOK: true},
		{name: "up", dx: -20, dy: -60, want: types.DirectionUp, wantOK: true},
		{name: "tie goes vertical", dx: 50, dy: -50, want: types.DirectionUp, wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapSwipe(tt.dx, tt.dy)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMap(t *testing.T) {
	cmd, ok := Map(Event{Source: SourceButton, Button: "Pause"})
	require.True(t, ok)
	assert.IsType(t, &types.PauseCommand{}, cmd)

	cmd, ok = Map(Event{Source: SourceSwipe, DX: -40})
	require.True(t, ok)
	assert.Equal(t, &types.DirectionCommand{Direction: types.DirectionLeft}, cmd)

	_, ok = Map(Event{Source: "gamepad"})
	assert.False(t, ok)
}

func TestDirectionBuffer(t *testing.T) {
	t.Run("rejects reversal", func(t *testing.T) {
		b := &DirectionBuffer{}
		assert.False(t, b.Request(types.PhaseRunning, types.DirectionRight, types.DirectionLeft))
		assert.Equal(t, types.DirectionRight, b.Take(types.DirectionRight))
	})

	t.Run("swallows requests unless running", func(t *testing.T) {
		b := &DirectionBuffer{}
		for _, phase := range []types.Phase{types.PhaseNotStarted, types.PhasePaused, types.PhaseGameOver} {
			assert.False(t, b.Request(phase, types.DirectionRight, types.DirectionUp))
		}
		_, ok := b.Pending()
		assert.False(t, ok)
	})

	t.Run("keeps one request and the last accepted wins", func(t *testing.T) {
		b := &DirectionBuffer{}
		assert.True(t, b.Request(types.PhaseRunning, types.DirectionRight, types.DirectionUp))
		assert.True(t, b.Request(types.PhaseRunning, types.DirectionRight, types.DirectionDown))
		// a reversal of the committed heading does not replace the pending request
		assert.False(t, b.Request(types.PhaseRunning, types.DirectionRight, types.DirectionLeft))

		assert.Equal(t, types.DirectionDown, b.Take(types.DirectionRight))
		// the buffer is drained by Take
		assert.Equal(t, types.DirectionDown, b.Take(types.DirectionDown))
	})

	t.Run("clear", func(t *testing.T) {
		b := &DirectionBuffer{}
		b.Request(types.PhaseRunning, types.DirectionUp, types.DirectionLeft)
		b.Clear()
		assert.Equal(t, types.DirectionUp, b.Take(types.DirectionUp))
	})
}
