package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/snake/pkg/game/constants"
	"github.com/cbodonnell/snake/pkg/game/types"
)

// BoundaryPolicy decides what happens when the head leaves the board.
type BoundaryPolicy uint8

const (
	// BoundaryWrap re-enters the board from the opposite edge.
	BoundaryWrap BoundaryPolicy = iota
	// BoundaryWalled surrounds the board with a one-cell wall ring.
	BoundaryWalled
)

func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryWrap:
		return "wrap"
	case BoundaryWalled:
		return "walled"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy parses "wrap" or "walled".
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(s) {
	case "wrap":
		return BoundaryWrap, nil
	case "walled", "walls":
		return BoundaryWalled, nil
	default:
		return BoundaryWrap, fmt.Errorf("unknown boundary policy: %s", s)
	}
}

// Board is a square grid of Size cells per side.
type Board struct {
	Size   int
	Policy BoundaryPolicy
}

// NewBoard validates the size against the policy.
func NewBoard(size int, policy BoundaryPolicy) (Board, error) {
	if size < constants.MinGridSize || size > constants.MaxGridSize {
		return Board{}, fmt.Errorf("grid size %d out of range [%d, %d]", size, constants.MinGridSize, constants.MaxGridSize)
	}
	if policy != BoundaryWrap && policy != BoundaryWalled {
		return Board{}, fmt.Errorf("unknown boundary policy: %d", policy)
	}
	return Board{Size: size, Policy: policy}, nil
}

// IsWall reports whether p is part of the wall ring. Wrapped boards have no walls.
func (b Board) IsWall(p types.Position) bool {
	if b.Policy != BoundaryWalled {
		return false
	}
	return p.X <= 0 || p.Y <= 0 || p.X >= b.Size-1 || p.Y >= b.Size-1
}

// InBounds reports whether p lies inside the grid.
func (b Board) InBounds(p types.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Size && p.Y < b.Size
}

// IsPlayable reports whether the snake or food may occupy p.
func (b Board) IsPlayable(p types.Position) bool {
	return b.InBounds(p) && !b.IsWall(p)
}

// Resolve applies the boundary policy to a candidate head. It returns false
// when the move ends the game.
func (b Board) Resolve(p types.Position) (types.Position, bool) {
	switch b.Policy {
	case BoundaryWrap:
		return types.Position{
			X: ((p.X % b.Size) + b.Size) % b.Size,
			Y: ((p.Y % b.Size) + b.Size) % b.Size,
		}, true
	default:
		return p, b.IsPlayable(p)
	}
}

// PlayableCells returns every playable cell in row-major order.
func (b Board) PlayableCells() []types.Position {
	cells := make([]types.Position, 0, b.Size*b.Size)
	for y := 0; y < b.Size; y++ {
		for x := 0; x < b.Size; x++ {
			p := types.Position{X: x, Y: y}
			if b.IsPlayable(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Center returns the middle playable cell.
func (b Board) Center() types.Position {
	return types.Position{X: b.Size / 2, Y: b.Size / 2}
}
