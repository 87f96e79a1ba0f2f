package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection_Opposite(t *testing.T) {
	tests := []struct {
		d    Direction
		want Direction
	}{
		{DirectionUp, DirectionDown},
		{DirectionDown, DirectionUp},
		{DirectionLeft, DirectionRight},
		{DirectionRight, DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Opposite())
			assert.True(t, tt.d.IsOpposite(tt.want))
			assert.False(t, tt.d.IsOpposite(tt.d))
		})
	}
}

func TestPosition_Add(t *testing.T) {
	p := Position{X: 5, Y: 5}
	assert.Equal(t, Position{X: 5, Y: 4}, p.Add(DirectionUp))
	assert.Equal(t, Position{X: 5, Y: 6}, p.Add(DirectionDown))
	assert.Equal(t, Position{X: 4, Y: 5}, p.Add(DirectionLeft))
	assert.Equal(t, Position{X: 6, Y: 5}, p.Add(DirectionRight))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("left")
	require.NoError(t, err)
	assert.Equal(t, DirectionLeft, d)

	d, err = ParseDirection(" UP ")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestGameState_CopyIsDeep(t *testing.T) {
	state := &GameState{
		Snake:     Snake{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Direction: DirectionUp,
		Phase:     PhaseRunning,
	}
	c := state.Copy()
	c.Snake[0] = Position{X: 9, Y: 9}
	assert.Equal(t, Position{X: 1, Y: 1}, state.Snake[0])
	assert.Equal(t, state.Direction, c.Direction)
}

func TestSnapshot_JSON(t *testing.T) {
	snapshot := &Snapshot{
		Width:     2,
		Height:    1,
		Cells:     []Cell{CellHead, CellFood},
		Phase:     PhasePaused,
		Direction: DirectionLeft,
	}
	b, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cells":["head","food"]`)
	assert.Contains(t, string(b), `"phase":"paused"`)

	got := &Snapshot{}
	require.NoError(t, json.Unmarshal(b, got))
	assert.Equal(t, snapshot, got)
	assert.Equal(t, CellFood, got.CellAt(1, 0))
	assert.Equal(t, CellEmpty, got.CellAt(2, 0))
}
