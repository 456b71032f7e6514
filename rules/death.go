package rules

// checkForDeath looks at where the head is about to go and returns the death
// cause, or an empty string if the move is safe. Possible death options are
// wall collision and snake body collision. The whole current body counts,
// tail included.
func checkForDeath(head Point, body []Point, size int32) string {
	if deathByOutOfBounds(head, size) {
		return DeathCauseWallCollision
	}
	for _, b := range body {
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, size int32) bool {
	return !head.InBounds(size)
}
