package motion

import "time"

// DefaultStagger is the per-item offset used when none is given.
const DefaultStagger = 100 * time.Millisecond

// Stagger returns n offsets spaced by d: [0, d, 2d, ..., (n-1)d].
// n <= 0 yields an empty slice.
func Stagger(n int, d time.Duration) []time.Duration {
	if n <= 0 {
		return []time.Duration{}
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = time.Duration(i) * d
	}
	return out
}

// StaggerMillis is Stagger expressed in whole milliseconds, the unit the
// markup uses for animation-delay.
func StaggerMillis(n int, d time.Duration) []int64 {
	delays := Stagger(n, d)
	out := make([]int64, len(delays))
	for i, v := range delays {
		out[i] = v.Milliseconds()
	}
	return out
}
