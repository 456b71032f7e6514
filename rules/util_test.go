package rules

import (
	"time"
)

// sequenceSource replays a fixed list of cells, wrapping around at the end.
type sequenceSource struct {
	cells []Point
	next  int
	calls int
}

func (s *sequenceSource) NextCell(size int32) Point {
	s.calls++
	p := s.cells[s.next%len(s.cells)]
	s.next++
	return p
}

func runningState(snake []Point, dir Direction, food Point) *State {
	return &State{
		Snake:     snake,
		Food:      food,
		Direction: dir,
		Pending:   dir,
		Speed:     250 * time.Millisecond,
		Status:    GameStatusRunning,
	}
}
