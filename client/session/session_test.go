package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/snake/pkg/game"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSession(t *testing.T) {
	board, err := game.NewBoard(15, game.BoundaryWrap)
	require.NoError(t, err)
	s := NewLocalSession(NewLocalSessionOptions{
		Engine:     game.NewEngine(board, game.DefaultRules(), rand.New(rand.NewSource(1))),
		Repository: repositories.NewMemoryRepository(),
	})
	assert.Nil(t, s.Snapshot())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return s.Snapshot() != nil }, time.Second, 5*time.Millisecond)
	assert.Equal(t, types.PhaseNotStarted, s.Snapshot().Phase)

	require.NoError(t, s.Send(input.Event{Source: input.SourceKeyboard, Key: "Enter"}))
	require.Eventually(t, func() bool {
		return s.Snapshot().Phase == types.PhaseRunning
	}, time.Second, 5*time.Millisecond)

	// unmapped input is dropped without error
	assert.NoError(t, s.Send(input.Event{Source: input.SourceKeyboard, Key: "x"}))

	require.NoError(t, s.Send(input.Event{Source: input.SourceButton, Button: "pause"}))
	require.Eventually(t, func() bool {
		return s.Snapshot().Phase == types.PhasePaused
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("game loop did not stop")
	}
}
