package types

// Commands are enqueued on the game loop inbox and applied by the loop goroutine.

// StartCommand starts a game that has not been started yet.
type StartCommand struct{}

// PauseCommand pauses a running game.
type PauseCommand struct{}

// ResumeCommand resumes a paused game.
type ResumeCommand struct{}

// TogglePauseCommand pauses a running game, resumes a paused one, and starts
// or restarts otherwise. Single-button sources use it.
type TogglePauseCommand struct{}

// RestartCommand replaces the game state with a fresh one and runs it.
type RestartCommand struct{}

// DirectionCommand requests a heading for the next tick.
type DirectionCommand struct {
	Direction Direction
}
