package types

// Snake is the ordered body of the snake, head first.
type Snake []Position

// NewSnake returns a snake of length one at the given position.
func NewSnake(head Position) Snake {
	return Snake{head}
}

// Head returns the first segment.
func (s Snake) Head() Position {
	return s[0]
}

// Tail returns the last segment.
func (s Snake) Tail() Position {
	return s[len(s)-1]
}

// Contains reports whether any segment occupies p.
func (s Snake) Contains(p Position) bool {
	for _, segment := range s {
		if segment == p {
			return true
		}
	}
	return false
}

// Copy returns a snake that shares no memory with s.
func (s Snake) Copy() Snake {
	c := make(Snake, len(s))
	copy(c, s)
	return c
}

// Occupied returns the set of cells covered by the snake.
func (s Snake) Occupied() map[Position]struct{} {
	occupied := make(map[Position]struct{}, len(s))
	for _, segment := range s {
		occupied[segment] = struct{}{}
	}
	return occupied
}
