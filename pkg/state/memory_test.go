package state

import (
	"context"
	"testing"

	gametypes "github.com/cbodonnell/snake/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.Error(t, err)
	assert.Error(t, m.Set(ctx, nil))

	food := gametypes.Position{X: 1, Y: 1}
	original := &gametypes.GameState{
		Snake: gametypes.Snake{{X: 2, Y: 2}},
		Food:  &food,
		Phase: gametypes.PhaseRunning,
	}
	require.NoError(t, m.Set(ctx, original))

	// later changes by the owner are not visible to readers
	original.Snake[0] = gametypes.Position{X: 9, Y: 9}
	original.Food.X = 9

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, gametypes.Position{X: 2, Y: 2}, got.Snake[0])
	assert.Equal(t, 1, got.Food.X)

	// nor are changes by readers
	got.Snake[0] = gametypes.Position{X: 5, Y: 5}
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, gametypes.Position{X: 2, Y: 2}, again.Snake[0])
}

func TestInMemoryStateManager_Snapshot(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.GetSnapshot(ctx)
	assert.Error(t, err)

	snapshot := &gametypes.Snapshot{Width: 1, Height: 1, Cells: []gametypes.Cell{gametypes.CellHead}}
	require.NoError(t, m.SetSnapshot(ctx, snapshot))
	snapshot.Cells[0] = gametypes.CellEmpty

	got, err := m.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, gametypes.CellHead, got.Cells[0])
}
