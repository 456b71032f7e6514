package rules

// Direction is a unit step on the board.
type Direction struct {
	X int32
	Y int32
}

// The four directions a snake can travel in.
var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Perpendicular reports whether turning from d to other is a 90 degree turn.
// Requests along the current axis, including reversals, are not.
func (d Direction) Perpendicular(other Direction) bool {
	if !d.Valid() || !other.Valid() {
		return false
	}
	return d.X*other.X+d.Y*other.Y == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// ParseDirection maps "up", "down", "left" and "right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Direction{}, false
}
