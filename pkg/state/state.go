package state

import (
	"context"

	gametypes "github.com/cbodonnell/snake/pkg/game/types"
)

// StateManager provides shared access to the game state.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the current game state.
	Get(ctx context.Context) (*gametypes.GameState, error)
	// Set sets the current game state.
	Set(ctx context.Context, gameState *gametypes.GameState) error
	// GetSnapshot returns the latest snapshot.
	GetSnapshot(ctx context.Context) (*gametypes.Snapshot, error)
	// SetSnapshot sets the latest snapshot.
	SetSnapshot(ctx context.Context, snapshot *gametypes.Snapshot) error
}
