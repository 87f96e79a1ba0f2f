package game

import (
	"github.com/cbodonnell/snake/pkg/game/types"
)

// SnapshotFromState renders the board for display layers.
// Cells are row-major; walls come first, then food, then the body and finally the head.
func SnapshotFromState(state *types.GameState, board Board, highScore int) *types.Snapshot {
	cells := make([]types.Cell, board.Size*board.Size)
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			if board.IsWall(types.Position{X: x, Y: y}) {
				cells[y*board.Size+x] = types.CellWall
			}
		}
	}

	set := func(p types.Position, cell types.Cell) {
		if !board.InBounds(p) {
			return
		}
		cells[p.Y*board.Size+p.X] = cell
	}
	if state.Food != nil {
		set(*state.Food, types.CellFood)
	}
	for i := len(state.Snake) - 1; i > 0; i-- {
		set(state.Snake[i], types.CellBody)
	}
	if len(state.Snake) > 0 {
		set(state.Snake.Head(), types.CellHead)
	}

	if state.Score > highScore {
		highScore = state.Score
	}

	return &types.Snapshot{
		SessionID: state.SessionID,
		Tick:      state.Tick,
		Width:     board.Size,
		Height:    board.Size,
		Cells:     cells,
		Score:     state.Score,
		HighScore: highScore,
		SpeedMs:   state.Speed.Milliseconds(),
		Phase:     state.Phase,
		Won:       state.Won,
		Direction: state.Direction,
	}
}
