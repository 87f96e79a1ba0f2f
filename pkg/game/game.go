package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
	"github.com/cbodonnell/snake/pkg/input"
	"github.com/cbodonnell/snake/pkg/log"
	"github.com/cbodonnell/snake/pkg/queue"
	"github.com/cbodonnell/snake/pkg/repositories"
	"github.com/cbodonnell/snake/pkg/state"
	"github.com/cbodonnell/snake/pkg/workers"
	"github.com/google/uuid"
)

// GameManager runs the game loop. Only the goroutine running Start touches
// the game state; everyone else talks to it through the command queue and
// reads copies from the state manager or the snapshot channel.
type GameManager struct {
	engine            *Engine
	commandQueue      queue.Queue
	repository        repositories.Repository
	stateManager      state.StateManager
	saveHighScoreChan chan<- workers.SaveHighScoreRequest
	snapshotChan      chan<- *types.Snapshot
	highScoreKey      string
	newSessionID      func() string

	gameState  *types.GameState
	sessionLog *log.Logger
	highScore  int
	directions input.DirectionBuffer
	timer      *time.Timer
	timerC     <-chan time.Time
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Engine       *Engine
	CommandQueue queue.Queue
	Repository   repositories.Repository
	StateManager state.StateManager
	// SaveHighScoreChan hands new records to a SaveHighScoreWorker.
	// When nil, records are written to the repository from the loop.
	SaveHighScoreChan chan<- workers.SaveHighScoreRequest
	// SnapshotChan receives a snapshot after every change. Sends never block;
	// a snapshot is dropped when the channel is full.
	SnapshotChan chan<- *types.Snapshot
	// HighScoreKey defaults to constants.HighScoreKey
	HighScoreKey string
	// NewSessionID defaults to random UUIDs
	NewSessionID func() string
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	highScoreKey := opts.HighScoreKey
	if highScoreKey == "" {
		highScoreKey = constants.HighScoreKey
	}
	newSessionID := opts.NewSessionID
	if newSessionID == nil {
		newSessionID = uuid.NewString
	}
	return &GameManager{
		engine:            opts.Engine,
		commandQueue:      opts.CommandQueue,
		repository:        opts.Repository,
		stateManager:      opts.StateManager,
		saveHighScoreChan: opts.SaveHighScoreChan,
		snapshotChan:      opts.SnapshotChan,
		highScoreKey:      highScoreKey,
		newSessionID:      newSessionID,
	}
}

// Start runs the game loop until the context is cancelled.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.initializeGameState(ctx); err != nil {
		return fmt.Errorf("failed to initialize game state: %v", err)
	}
	defer gm.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-gm.commandQueue.Ready():
			gm.processCommands(ctx)
		case t := <-gm.timerC:
			gm.timer = nil
			gm.timerC = nil
			gm.gameTick(ctx, t)
		}
	}
}

func (gm *GameManager) initializeGameState(ctx context.Context) error {
	if gm.engine == nil {
		return fmt.Errorf("engine is required")
	}
	if gm.commandQueue == nil {
		return fmt.Errorf("command queue is required")
	}

	gm.highScore = gm.loadHighScore(ctx)
	gm.gameState = gm.engine.InitialState()
	gm.gameState.Timestamp = time.Now().UnixMilli()
	gm.publish(ctx)

	return nil
}

// loadHighScore reads the persisted high score. A missing or unreadable
// value counts as zero.
func (gm *GameManager) loadHighScore(ctx context.Context) int {
	if gm.repository == nil {
		return 0
	}
	highScore, err := gm.repository.GetHighScore(ctx, gm.highScoreKey)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Error("Failed to load high score: %v", err)
		}
		return 0
	}
	log.Debug("Loaded high score %d", highScore.Score)
	return highScore.Score
}

// processCommands applies every pending command in arrival order.
func (gm *GameManager) processCommands(ctx context.Context) {
	pendingCommands, err := gm.commandQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read commands: %v", err)
		return
	}
	changed := false
	for _, item := range pendingCommands {
		if gm.handleCommand(item) {
			changed = true
		}
	}
	if changed {
		gm.publish(ctx)
	}
}

// handleCommand applies a single command and reports whether the phase or
// the state changed.
func (gm *GameManager) handleCommand(item interface{}) bool {
	phase := gm.gameState.Phase
	switch command := item.(type) {
	case *types.StartCommand:
		if phase == types.PhaseNotStarted || phase == types.PhaseGameOver {
			return gm.newGame()
		}
	case *types.RestartCommand:
		return gm.newGame()
	case *types.PauseCommand:
		if phase == types.PhaseRunning {
			gm.pause()
			return true
		}
	case *types.ResumeCommand:
		if phase == types.PhasePaused {
			gm.resume()
			return true
		}
	case *types.TogglePauseCommand:
		switch phase {
		case types.PhaseRunning:
			gm.pause()
			return true
		case types.PhasePaused:
			gm.resume()
			return true
		default:
			return gm.newGame()
		}
	case *types.DirectionCommand:
		if !gm.directions.Request(phase, gm.gameState.Direction, command.Direction) {
			log.Trace("Ignored direction %s while %s heading %s", command.Direction, phase, gm.gameState.Direction)
		}
		return false
	default:
		log.Error("Unhandled command type: %T", item)
		return false
	}
	log.Debug("Ignored %T while %s", item, phase)
	return false
}

// newGame replaces the game state with a fresh running one and arms the timer.
func (gm *GameManager) newGame() bool {
	gameState, err := gm.engine.NewGame(gm.newSessionID())
	if err != nil {
		log.Error("Failed to start a new game: %v", err)
		return false
	}
	if gm.gameState != nil && gm.gameState.Phase == types.PhaseNotStarted && gm.gameState.Food != nil {
		// the first game keeps the food already on screen
		food := *gm.gameState.Food
		gameState.Food = &food
	}
	gm.stopTimer()
	gm.directions.Clear()
	gameState.Timestamp = time.Now().UnixMilli()
	gm.gameState = gameState
	gm.sessionLog = nil
	gm.armTimer(gameState.Speed)
	gm.logger().Info("Started game")
	return true
}

// logger tags entries with the current session.
func (gm *GameManager) logger() *log.Logger {
	if gm.sessionLog == nil {
		gm.sessionLog = log.With("session", gm.gameState.SessionID)
	}
	return gm.sessionLog
}

func (gm *GameManager) pause() {
	gm.stopTimer()
	gm.gameState.Phase = types.PhasePaused
	gm.logger().Debug("Paused")
}

func (gm *GameManager) resume() {
	gm.gameState.Phase = types.PhaseRunning
	gm.armTimer(gm.gameState.Speed)
	gm.logger().Debug("Resumed")
}

// gameTick runs one step of the game and re-arms the timer with the
// interval of the resulting state.
func (gm *GameManager) gameTick(ctx context.Context, t time.Time) {
	if gm.gameState.Phase != types.PhaseRunning {
		return
	}

	gm.gameState.Direction = gm.directions.Take(gm.gameState.Direction)
	next, result := gm.engine.Step(gm.gameState)
	next.Timestamp = t.UnixMilli()
	gm.gameState = next
	log.Trace("Tick %d: head %s score %d", next.Tick, next.Snake.Head(), next.Score)

	if next.Score > gm.highScore {
		gm.highScore = next.Score
		gm.saveHighScore(ctx, next.Timestamp)
	}
	if result.SpeedChanged {
		gm.logger().Debug("Speed changed to %s", next.Speed)
	}

	if result.GameOver() {
		gm.stopTimer()
		if result.BoardFull {
			gm.logger().Info("Won with score %d", next.Score)
		} else {
			gm.logger().Info("Game over with score %d: %s collision", next.Score, result.Collision)
		}
	} else {
		gm.armTimer(next.Speed)
	}

	gm.publish(ctx)
}

func (gm *GameManager) saveHighScore(ctx context.Context, timestamp int64) {
	saveRequest := workers.SaveHighScoreRequest{
		Timestamp: timestamp,
		Key:       gm.highScoreKey,
		Score:     gm.highScore,
	}
	if gm.saveHighScoreChan != nil {
		select {
		case gm.saveHighScoreChan <- saveRequest:
		default:
			log.Warn("Save high score queue is full, dropping score %d", saveRequest.Score)
		}
		return
	}
	if gm.repository == nil {
		return
	}
	if err := gm.repository.SetHighScore(ctx, saveRequest.Key, saveRequest.Score, saveRequest.Timestamp); err != nil {
		log.Error("Failed to save high score: %v", err)
	}
}

// publish hands copies of the current state to readers outside the loop.
func (gm *GameManager) publish(ctx context.Context) {
	snapshot := SnapshotFromState(gm.gameState, gm.engine.Board(), gm.highScore)

	if gm.stateManager != nil {
		if err := gm.stateManager.Set(ctx, gm.gameState); err != nil {
			log.Error("Failed to set game state: %v", err)
		}
		if err := gm.stateManager.SetSnapshot(ctx, snapshot); err != nil {
			log.Error("Failed to set snapshot: %v", err)
		}
	}

	if gm.snapshotChan != nil {
		select {
		case gm.snapshotChan <- snapshot:
		default:
			log.Trace("Snapshot channel is full, dropping tick %d", snapshot.Tick)
		}
	}
}

func (gm *GameManager) armTimer(d time.Duration) {
	gm.stopTimer()
	gm.timer = time.NewTimer(d)
	gm.timerC = gm.timer.C
}

func (gm *GameManager) stopTimer() {
	if gm.timer == nil {
		return
	}
	gm.timer.Stop()
	gm.timer = nil
	gm.timerC = nil
}
