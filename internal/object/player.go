package object

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/backyard/internal/physics"
)

// ErrInvalidPlayer is returned when a player is built with unusable parameters.
var ErrInvalidPlayer = errors.New("invalid player")

// diagonalScale keeps diagonal speed equal to cardinal speed.
const diagonalScale = math.Sqrt2 / 2

// Facing is the direction the player last moved in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the walking character.
type Player struct {
	X, Y          float64 // Top-left corner in world units
	Width, Height float64
	Speed         float64 // Units per tick

	Facing    Facing
	Moving    bool
	WalkCycle int // Ticks spent moving, 0 while idle
	IdleTimer int // Ticks spent idle, 0 while moving
	Sprite    Animation
}

// NewPlayer creates a 16x16 player facing down.
func NewPlayer(x, y, size, speed float64, frames, frameDelay int) (*Player, error) {
	if !(speed > 0) || math.IsInf(speed, 1) {
		return nil, fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidPlayer, speed)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: size must be positive, got %v", ErrInvalidPlayer, size)
	}
	sprite, err := NewAnimation(frames, frameDelay)
	if err != nil {
		return nil, fmt.Errorf("player sprite: %w", err)
	}
	return &Player{
		X:      x,
		Y:      y,
		Width:  size,
		Height: size,
		Speed:  speed,
		Facing: FacingDown,
		Sprite: sprite,
	}, nil
}

// Box returns the player's bounding box.
func (p *Player) Box() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Update reads the input once and moves the player.
//
// Keys are evaluated up, down, left, right. A later key on the same axis
// overrides both the intent and the facing of an earlier one, so up+down
// walks down and faces down. Each axis is accepted only if the candidate
// position stays inside the margins; a rejected axis keeps its old value.
func (p *Player) Update(in Input, b Bounds) {
	moveX, moveY := 0.0, 0.0

	if in.Up() {
		moveY = -1
		p.Facing = FacingUp
	}
	if in.Down() {
		moveY = 1
		p.Facing = FacingDown
	}
	if in.Left() {
		moveX = -1
		p.Facing = FacingLeft
	}
	if in.Right() {
		moveX = 1
		p.Facing = FacingRight
	}

	if moveX != 0 && moveY != 0 {
		moveX *= diagonalScale
		moveY *= diagonalScale
	}

	newX := p.X + moveX*p.Speed
	newY := p.Y + moveY*p.Speed

	p.Moving = in.AnyDirection()
	if p.Moving {
		p.WalkCycle++
		p.IdleTimer = 0
	} else {
		p.IdleTimer++
		p.WalkCycle = 0
	}
	p.Sprite.Step(p.Moving)

	if physics.InRange(newX, b.Margin, b.Width-p.Width-b.Margin) {
		p.X = newX
	}
	if physics.InRange(newY, b.Margin, b.Height-p.Height-b.Margin) {
		p.Y = newY
	}
}
