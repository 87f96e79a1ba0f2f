package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
)

// Rules holds the speed ramp of a game.
type Rules struct {
	InitialSpeed   time.Duration
	MinSpeed       time.Duration
	SpeedDecrement time.Duration
	SpeedUpEvery   int
}

// DefaultRules returns the standard speed ramp.
func DefaultRules() Rules {
	return Rules{
		InitialSpeed:   constants.InitialSpeed,
		MinSpeed:       constants.MinSpeed,
		SpeedDecrement: constants.SpeedDecrement,
		SpeedUpEvery:   constants.SpeedUpEvery,
	}
}

// Validate checks that the ramp can never go below its floor or stall.
func (r Rules) Validate() error {
	if r.MinSpeed <= 0 {
		return fmt.Errorf("min speed must be positive, got %s", r.MinSpeed)
	}
	if r.InitialSpeed < r.MinSpeed {
		return fmt.Errorf("initial speed %s is below min speed %s", r.InitialSpeed, r.MinSpeed)
	}
	if r.SpeedDecrement < 0 {
		return fmt.Errorf("speed decrement must not be negative, got %s", r.SpeedDecrement)
	}
	if r.SpeedUpEvery <= 0 {
		return fmt.Errorf("speed up interval must be positive, got %d", r.SpeedUpEvery)
	}
	return nil
}

// Collision describes why a step ended the game.
type Collision uint8

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during a single step.
type StepResult struct {
	// Collision is set when the step ended the game by hitting a wall or the snake
	Collision Collision
	// Ate is set when the head landed on the food
	Ate bool
	// SpeedChanged is set when the tick interval shrank
	SpeedChanged bool
	// BoardFull is set when no free cell was left for new food
	BoardFull bool
}

// GameOver reports whether the step moved the game into its terminal phase.
func (r StepResult) GameOver() bool {
	return r.Collision != CollisionNone || r.BoardFull
}

// Engine advances game states on a board.
// It is not safe for concurrent use; the game loop owns it.
type Engine struct {
	board Board
	rules Rules
	rng   *rand.Rand
}

func NewEngine(board Board, rules Rules, rng *rand.Rand) *Engine {
	return &Engine{
		board: board,
		rules: rules,
		rng:   rng,
	}
}

func (e *Engine) Board() Board {
	return e.board
}

func (e *Engine) Rules() Rules {
	return e.rules
}

// InitialState returns the state shown before the first start.
func (e *Engine) InitialState() *types.GameState {
	snake := types.NewSnake(e.board.Center())
	food := types.Position{X: constants.FoodStartingX, Y: constants.FoodStartingY}
	if !e.board.IsPlayable(food) || snake.Contains(food) {
		// never fails: a valid board has more than one playable cell
		food, _ = PlaceFood(e.rng, snake.Occupied(), e.board)
	}
	return &types.GameState{
		Snake:     snake,
		Food:      &food,
		Direction: types.DirectionRight,
		Speed:     e.rules.InitialSpeed,
		Phase:     types.PhaseNotStarted,
	}
}

// NewGame returns a running state for a fresh session.
func (e *Engine) NewGame(sessionID string) (*types.GameState, error) {
	snake := types.NewSnake(e.board.Center())
	food, err := PlaceFood(e.rng, snake.Occupied(), e.board)
	if err != nil {
		return nil, fmt.Errorf("failed to place food: %v", err)
	}
	return &types.GameState{
		SessionID: sessionID,
		Snake:     snake,
		Food:      &food,
		Direction: types.DirectionRight,
		Speed:     e.rules.InitialSpeed,
		Phase:     types.PhaseRunning,
	}, nil
}

// Step advances a running state by one tick and returns the new state.
// The input state is never modified. States that are not running are
// returned as a copy with an empty result.
func (e *Engine) Step(state *types.GameState) (*types.GameState, StepResult) {
	next := state.Copy()
	result := StepResult{}
	if state.Phase != types.PhaseRunning {
		return next, result
	}

	head, ok := e.board.Resolve(state.Snake.Head().Add(state.Direction))
	if !ok {
		next.Phase = types.PhaseGameOver
		result.Collision = CollisionWall
		return next, result
	}
	if state.Snake.Contains(head) {
		next.Phase = types.PhaseGameOver
		result.Collision = CollisionSelf
		return next, result
	}

	next.Tick++
	body := make(types.Snake, 0, len(state.Snake)+1)
	body = append(body, head)
	body = append(body, state.Snake...)

	if state.Food == nil || head != *state.Food {
		next.Snake = body[:len(body)-1]
		return next, result
	}

	next.Snake = body
	next.Score++
	result.Ate = true

	if next.Score%e.rules.SpeedUpEvery == 0 && next.Speed > e.rules.MinSpeed {
		next.Speed -= e.rules.SpeedDecrement
		if next.Speed < e.rules.MinSpeed {
			next.Speed = e.rules.MinSpeed
		}
		result.SpeedChanged = next.Speed != state.Speed
	}

	food, err := PlaceFood(e.rng, next.Snake.Occupied(), e.board)
	if err != nil {
		// the snake fills the board: nothing is left to eat
		next.Food = nil
		next.Phase = types.PhaseGameOver
		next.Won = true
		result.BoardFull = true
		return next, result
	}
	next.Food = &food

	return next, result
}
