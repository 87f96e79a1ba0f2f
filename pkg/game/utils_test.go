package game

import (
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotFromState(t *testing.T) {
	food := types.Position{X: 3, Y: 1}
	state := &types.GameState{
		SessionID: "s",
		Tick:      4,
		Snake:     types.Snake{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		Food:      &food,
		Direction: types.DirectionUp,
		Score:     7,
		Speed:     140 * time.Millisecond,
		Phase:     types.PhaseRunning,
	}

	snapshot := SnapshotFromState(state, Board{Size: 5, Policy: BoundaryWalled}, 3)
	assert.Equal(t, 5, snapshot.Width)
	assert.Len(t, snapshot.Cells, 25)
	assert.Equal(t, types.CellWall, snapshot.CellAt(0, 0))
	assert.Equal(t, types.CellWall, snapshot.CellAt(4, 2))
	assert.Equal(t, types.CellHead, snapshot.CellAt(1, 1))
	assert.Equal(t, types.CellBody, snapshot.CellAt(1, 2))
	assert.Equal(t, types.CellBody, snapshot.CellAt(2, 2))
	assert.Equal(t, types.CellFood, snapshot.CellAt(3, 1))
	assert.Equal(t, types.CellEmpty, snapshot.CellAt(2, 1))
	// the running score is shown as the high score once it passes it
	assert.Equal(t, 7, snapshot.HighScore)
	assert.Equal(t, int64(140), snapshot.SpeedMs)
	assert.Equal(t, types.DirectionUp, snapshot.Direction)

	state.Food = nil
	snapshot = SnapshotFromState(state, Board{Size: 5, Policy: BoundaryWrap}, 10)
	assert.Equal(t, types.CellEmpty, snapshot.CellAt(0, 0))
	assert.Equal(t, types.CellEmpty, snapshot.CellAt(3, 1))
	assert.Equal(t, 10, snapshot.HighScore)
}
