package rules

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when there is nowhere left to put food.
var ErrBoardFull = errors.New("rules: board is full")

// CellSource hands out candidate cells for food placement. Implementations
// should return cells on a size x size board, anything else is discarded.
type CellSource interface {
	NextCell(size int32) Point
}

// RandSource picks cells uniformly at random.
type RandSource struct {
	Rand *rand.Rand
}

// NewRandSource returns a RandSource seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{Rand: rand.New(rand.NewSource(seed))}
}

// NextCell implements CellSource.
func (r *RandSource) NextCell(size int32) Point {
	return Point{X: r.Rand.Int31n(size), Y: r.Rand.Int31n(size)}
}

// maxPlacementAttempts bounds rejection sampling per free cell before falling
// back to a scan of the board.
const maxPlacementAttempts = 64

// PlaceFood samples cells from src until it finds one that is not covered by
// the snake. When the snake covers every cell ErrBoardFull is returned
// instead.
func PlaceFood(size int32, snake []Point, src CellSource) (Point, error) {
	occupied := getUniqOccupiedPoints(snake)
	free := int(size)*int(size) - len(occupied)
	if free <= 0 {
		return Point{}, ErrBoardFull
	}

	for i := 0; i < maxPlacementAttempts*int(size)*int(size); i++ {
		p := src.NextCell(size)
		if !p.InBounds(size) {
			continue
		}
		if _, ok := occupied[p]; !ok {
			return p, nil
		}
	}

	// A source that keeps landing on the snake. Take the first open cell so
	// placement still terminates.
	openPoints := getUnoccupiedPoints(size, occupied)
	return openPoints[0], nil
}

func getUniqOccupiedPoints(snake []Point) map[Point]struct{} {
	occupied := make(map[Point]struct{}, len(snake))
	for _, b := range snake {
		occupied[b] = struct{}{}
	}
	return occupied
}

func getUnoccupiedPoints(size int32, occupied map[Point]struct{}) []Point {
	candidatePoints := make([]Point, 0, int(size)*int(size)-len(occupied))
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}
