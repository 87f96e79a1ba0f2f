package types

import (
	"fmt"
	"strings"
)

// Position is a cell on the board. (0, 0) is the top left corner.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position moved by the unit vector of a direction.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every direction in a stable order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Vector returns the unit step of the direction. Y grows downwards.
func (d Direction) Vector() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

// IsOpposite reports whether other is the exact reverse of d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// ParseDirection parses a direction name, case insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return DirectionUp, nil
	case "DOWN":
		return DirectionDown, nil
	case "LEFT":
		return DirectionLeft, nil
	case "RIGHT":
		return DirectionRight, nil
	default:
		return DirectionUp, fmt.Errorf("unknown direction: %s", s)
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
