package core

// WrapStep maps a coordinate that is at most one step outside [0, n) back
// onto the torus: -1 becomes n-1 and n becomes 0.
func WrapStep(c, n int) int {
	switch {
	case c < 0:
		return n - 1
	case c >= n:
		return 0
	default:
		return c
	}
}

// Wrap applies full modular toroidal wrapping for arbitrary offsets.
func Wrap(c, n int) int {
	return (c%n + n) % n
}
