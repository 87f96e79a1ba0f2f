package session

import (
	"context"
	"fmt"

	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/state"
)

// Session is what a display layer needs from a game: the latest snapshot to
// draw and somewhere to send raw input.
type Session interface {
	// Snapshot returns the latest snapshot, or nil when none is available yet
	Snapshot() *types.Snapshot
	// Send maps and forwards a raw input event. Events that map to nothing are dropped.
	Send(event input.Event) error
}

// LocalSession runs a game loop in process.
type LocalSession struct {
	commandQueue queue.Queue
	stateManager state.StateManager
	gameManager  *game.GameManager
}

var _ Session = &LocalSession{}

type NewLocalSessionOptions struct {
	Engine     *game.Engine
	Repository repositories.Repository
}

func NewLocalSession(opts NewLocalSessionOptions) *LocalSession {
	commandQueue := queue.NewInMemoryQueue(queue.QueueBufferSize)
	stateManager := state.NewInMemoryStateManager()
	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Engine:       opts.Engine,
		CommandQueue: commandQueue,
		Repository:   opts.Repository,
		StateManager: stateManager,
	})
	return &LocalSession{
		commandQueue: commandQueue,
		stateManager: stateManager,
		gameManager:  gameManager,
	}
}

// Start runs the game loop until the context is cancelled.
func (s *LocalSession) Start(ctx context.Context) error {
	return s.gameManager.Start(ctx)
}

func (s *LocalSession) Snapshot() *types.Snapshot {
	snapshot, err := s.stateManager.GetSnapshot(context.Background())
	if err != nil {
		return nil
	}
	return snapshot
}

func (s *LocalSession) Send(event input.Event) error {
	command, ok := input.Map(event)
	if !ok {
		log.Trace("Ignored input event %+v", event)
		return nil
	}
	if err := s.commandQueue.Enqueue(command); err != nil {
		return fmt.Errorf("failed to enqueue command: %v", err)
	}
	return nil
}
