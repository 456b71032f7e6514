package rules

// Move the snake 1 space in the given direction. The returned body is a new
// slice, the input is never modified.
//
// If the new head leaves the board or lands on the body the snake is returned
// unchanged along with the death cause. Otherwise the head is prepended and,
// unless the head landed on food, the tail is dropped.
func Move(snake []Point, dir Direction, food Point, size int32) (next []Point, ate bool, cause string) {
	if len(snake) == 0 {
		return snake, false, ""
	}
	head := snake[0].Add(dir)
	if cause = checkForDeath(head, snake, size); cause != "" {
		return snake, false, cause
	}

	ate = head.Equal(food)
	length := len(snake)
	if ate {
		length++
	}
	next = make([]Point, 0, length)
	next = append(next, head)
	next = append(next, snake[:length-1]...)
	return next, ate, ""
}

// Head returns the first point in the body
func Head(snake []Point) (Point, bool) {
	if len(snake) == 0 {
		return Point{}, false
	}
	return snake[0], true
}

// Tail returns the last point in the body
func Tail(snake []Point) (Point, bool) {
	if len(snake) == 0 {
		return Point{}, false
	}
	return snake[len(snake)-1], true
}
