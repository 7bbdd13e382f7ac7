// Package object holds the yard's simulated entities: the player, the props,
// sprite animation state and the particle system.
package object

import "github.com/tomz197/backyard/internal/input"

// Input is an alias for the input package's Input type.
type Input = input.Input

// Rand is the random source emission logic draws from.
// *math/rand.Rand satisfies it; tests inject deterministic sources.
type Rand interface {
	Float64() float64
}

// Bounds is the playable world area. Margin is the fence thickness kept
// clear on every side.
type Bounds struct {
	Width  float64
	Height float64
	Margin float64
}

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center of the box.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}
