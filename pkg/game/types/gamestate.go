package types

import (
	"fmt"
	"time"
)

type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type GameState struct {
	// SessionID identifies the current game; it changes on every start and restart
	SessionID string `json:"sessionId"`
	// Timestamp is the time at which the game state was last advanced
	Timestamp int64 `json:"timestamp"`
	// Tick counts the steps taken in the current session
	Tick uint64 `json:"tick"`
	// Snake is the snake body, head first
	Snake Snake `json:"snake"`
	// Food is the cell holding the food; nil once the snake fills the board
	Food *Position `json:"food"`
	// Direction is the heading applied on the next step
	Direction Direction `json:"direction"`
	// Score is the number of food eaten in this session
	Score int `json:"score"`
	// Speed is the interval between ticks
	Speed time.Duration `json:"speed"`
	// Phase is the lifecycle phase
	Phase Phase `json:"phase"`
	// Won is set when the game ended because the board was filled
	Won bool `json:"won"`
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	c := *g
	c.Snake = g.Snake.Copy()
	if g.Food != nil {
		food := *g.Food
		c.Food = &food
	}
	return &c
}

func (p *Phase) UnmarshalText(b []byte) error {
	for _, candidate := range []Phase{PhaseNotStarted, PhaseRunning, PhasePaused, PhaseGameOver} {
		if candidate.String() == string(b) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase: %s", b)
}
