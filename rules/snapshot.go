package rules

import "time"

// CellKind classifies a board cell for drawing.
type CellKind int

// Cell kinds. When a cell matches more than one, food wins over head and head
// wins over body.
const (
	CellEmpty CellKind = iota
	CellBody
	CellHead
	CellFood
)

// Snapshot is a read only copy of a game for the presentation layer.
type Snapshot struct {
	Size      int32
	Turn      int64
	Snake     []Point
	Food      Point
	Direction Direction
	Score     int64
	HighScore int64
	Speed     time.Duration
	Status    GameStatus
	Death     *Death
}

// Snapshot copies the state into a Snapshot for a size x size board.
func (s *State) Snapshot(size int32) Snapshot {
	c := s.Clone()
	return Snapshot{
		Size:      size,
		Turn:      c.Turn,
		Snake:     c.Snake,
		Food:      c.Food,
		Direction: c.Direction,
		Score:     c.Score,
		HighScore: c.HighScore,
		Speed:     c.Speed,
		Status:    c.Status,
		Death:     c.Death,
	}
}

// HasFood is false once the board has been filled.
func (s Snapshot) HasFood() bool {
	return s.Status != GameStatusWon
}

// CellAt classifies a single cell.
func (s Snapshot) CellAt(p Point) CellKind {
	if s.HasFood() && s.Food.Equal(p) {
		return CellFood
	}
	if head, ok := Head(s.Snake); ok && head.Equal(p) {
		return CellHead
	}
	if containsPoint(s.Snake, p) {
		return CellBody
	}
	return CellEmpty
}

// Grid classifies every cell, indexed [y][x].
func (s Snapshot) Grid() [][]CellKind {
	grid := make([][]CellKind, s.Size)
	for y := int32(0); y < s.Size; y++ {
		grid[y] = make([]CellKind, s.Size)
		for x := int32(0); x < s.Size; x++ {
			grid[y][x] = s.CellAt(Point{X: x, Y: y})
		}
	}
	return grid
}
