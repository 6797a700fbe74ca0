package utils

// StagnationTracker detects static states and short cycles from a stream
// of board state hashes. It lives outside the board because generations
// are distinct board values.
type StagnationTracker struct {
	history []string
}

// Observe records a state hash and reports whether it matches one of the
// last three observed states, which covers still lifes and oscillators
// with period up to three.
func (t *StagnationTracker) Observe(hash string) (stagnant bool) {
	for i := 1; i <= 3 && i <= len(t.history); i++ {
		if t.history[len(t.history)-i] == hash {
			stagnant = true
			break
		}
	}

	t.history = append(t.history, hash)
	// Keep only last 5 states to detect cycles
	if len(t.history) > 5 {
		t.history = t.history[1:]
	}
	return
}
