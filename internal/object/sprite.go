package object

import (
	"errors"
	"fmt"
)

// ErrInvalidAnimation is returned when an animation is built with no frames
// or a non-positive frame delay.
var ErrInvalidAnimation = errors.New("invalid animation")

// Animation tracks frame cycling for a sprite.
type Animation struct {
	Frames int // Number of frames in the cycle
	Frame  int // Current frame, always in [0, Frames)
	Timer  int // Ticks spent on the current frame
	Delay  int // Ticks per frame
}

// NewAnimation creates an animation at frame 0.
func NewAnimation(frames, delay int) (Animation, error) {
	if frames <= 0 {
		return Animation{}, fmt.Errorf("%w: frame count must be positive, got %d", ErrInvalidAnimation, frames)
	}
	if delay <= 0 {
		return Animation{}, fmt.Errorf("%w: frame delay must be positive, got %d", ErrInvalidAnimation, delay)
	}
	return Animation{Frames: frames, Delay: delay}, nil
}

// Animate advances the timer by one tick and moves to the next frame
// (wrapping) once the delay is reached.
func (a *Animation) Animate() {
	a.Timer++
	if a.Timer >= a.Delay {
		a.Frame = (a.Frame + 1) % a.Frames
		a.Timer = 0
	}
}

// Reset rewinds to frame 0 with a fresh timer.
func (a *Animation) Reset() {
	a.Frame = 0
	a.Timer = 0
}

// Step animates while active and resets otherwise. Inactive sprites restart
// from the first frame instead of pausing mid-cycle.
func (a *Animation) Step(active bool) {
	if active {
		a.Animate()
		return
	}
	a.Reset()
}
