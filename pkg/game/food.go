package game

import (
	"errors"
	"math/rand"

	"github.com/cbodonnell/snake/pkg/game/types"
)

// ErrNoSpaceAvailable is returned when every playable cell is occupied.
var ErrNoSpaceAvailable = errors.New("no space available for food")

// PlaceFood picks a playable cell that is not occupied, uniformly at random.
// It only samples from the cells that are actually free, so it always
// terminates; a full board yields ErrNoSpaceAvailable.
func PlaceFood(rng *rand.Rand, occupied map[types.Position]struct{}, board Board) (types.Position, error) {
	playable := board.PlayableCells()
	free := make([]types.Position, 0, len(playable))
	for _, p := range playable {
		if _, ok := occupied[p]; ok {
			continue
		}
		free = append(free, p)
	}
	if len(free) == 0 {
		return types.Position{}, ErrNoSpaceAvailable
	}
	return free[rng.Intn(len(free))], nil
}
