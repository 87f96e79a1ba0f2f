package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/snake/pkg/game/types"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState *gametypes.GameState
	snapshot  *gametypes.Snapshot
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*gametypes.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.gameState == nil {
		return nil, fmt.Errorf("game state is not set")
	}
	return m.gameState.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, gameState *gametypes.GameState) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}
	c := gameState.Copy()

	m.lock.Lock()
	defer m.lock.Unlock()
	m.gameState = c
	return nil
}

func (m *InMemoryStateManager) GetSnapshot(ctx context.Context) (*gametypes.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.snapshot == nil {
		return nil, fmt.Errorf("snapshot is not set")
	}
	return m.snapshot.Copy(), nil
}

func (m *InMemoryStateManager) SetSnapshot(ctx context.Context, snapshot *gametypes.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}
	c := snapshot.Copy()

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = c
	return nil
}
