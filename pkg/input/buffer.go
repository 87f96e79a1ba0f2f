package input

import "github.com/cbodonnell/snake/pkg/game/types"

// DirectionBuffer holds at most one pending direction between ticks.
// It is owned by the game loop and is not safe for concurrent use.
type DirectionBuffer struct {
	pending *types.Direction
}

// Request stores a direction for the next tick. Requests are swallowed
// unless the game is running, and a reversal of the current heading is
// rejected. A later accepted request replaces an earlier one.
func (b *DirectionBuffer) Request(phase types.Phase, current, requested types.Direction) bool {
	if phase != types.PhaseRunning {
		return false
	}
	if current.IsOpposite(requested) {
		return false
	}
	b.pending = &requested
	return true
}

// Take empties the buffer and returns the direction to apply this tick.
// Without a pending request the current direction is kept.
func (b *DirectionBuffer) Take(current types.Direction) types.Direction {
	pending := b.pending
	b.pending = nil
	if pending == nil || current.IsOpposite(*pending) {
		return current
	}
	return *pending
}

// Pending returns the buffered direction, if any.
func (b *DirectionBuffer) Pending() (types.Direction, bool) {
	if b.pending == nil {
		return types.DirectionUp, false
	}
	return *b.pending, true
}

// Clear drops any pending request.
func (b *DirectionBuffer) Clear() {
	b.pending = nil
}
