package engine

// AllocateTime converts a remaining-clock budget into a per-move budget in
// milliseconds: a thirtieth of the clock, never below 100ms.
func AllocateTime(remainingMs int) int {
	budget := remainingMs / 30
	if budget < 100 {
		budget = 100
	}
	return budget
}
