package types

import "fmt"

type Cell uint8

const (
	CellEmpty Cell = iota
	CellBody
	CellHead
	CellFood
	CellWall
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBody:
		return "body"
	case CellHead:
		return "head"
	case CellFood:
		return "food"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Snapshot is the full grid handed to display layers after every change.
type Snapshot struct {
	SessionID string    `json:"sessionId"`
	Tick      uint64    `json:"tick"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Cells     []Cell    `json:"cells"`
	Score     int       `json:"score"`
	HighScore int       `json:"highScore"`
	SpeedMs   int64     `json:"speedMs"`
	Phase     Phase     `json:"phase"`
	Won       bool      `json:"won"`
	Direction Direction `json:"direction"`
}

// CellAt returns the cell at (x, y), or CellEmpty outside the grid.
func (s *Snapshot) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return CellEmpty
	}
	return s.Cells[y*s.Width+x]
}

func (c *Cell) UnmarshalText(b []byte) error {
	for _, candidate := range []Cell{CellEmpty, CellBody, CellHead, CellFood, CellWall} {
		if candidate.String() == string(b) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown cell: %s", b)
}

// Copy returns a snapshot that shares no memory with s.
func (s *Snapshot) Copy() *Snapshot {
	c := *s
	c.Cells = make([]Cell, len(s.Cells))
	copy(c.Cells, s.Cells)
	return &c
}
