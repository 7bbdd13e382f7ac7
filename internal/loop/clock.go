package loop

import "math"

// DayTracker turns elapsed real time into in-game days.
type DayTracker struct {
	Day     int
	elapsed float64 // Milliseconds accumulated toward the next day
	length  float64
}

// NewDayTracker creates a tracker at day 0. length is the day length in ms.
func NewDayTracker(length float64) *DayTracker {
	return &DayTracker{length: length}
}

// Advance adds delta ms and reports whether a new day started.
// At most one day is counted per call; any excess beyond a whole day is
// folded back so the accumulator stays in [0, length).
func (d *DayTracker) Advance(delta float64) bool {
	if delta > 0 {
		d.elapsed += delta
	}
	if d.elapsed < d.length {
		return false
	}
	d.Day++
	d.elapsed = math.Mod(d.elapsed, d.length)
	return true
}

// Elapsed returns the time accumulated toward the next day.
func (d *DayTracker) Elapsed() float64 {
	return d.elapsed
}
