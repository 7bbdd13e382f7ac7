// Package physics provides collision detection and bounds utilities.
package physics

// BoxesOverlap checks if two axis-aligned boxes overlap.
// Touching edges do not count as overlap.
func BoxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw &&
		ax+aw > bx &&
		ay < by+bh &&
		ay+ah > by
}

// InRange reports whether lo <= v <= hi.
func InRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
