package object

import (
	"fmt"
	"math"

	"github.com/tomz197/backyard/internal/palette"
)

// PropKind identifies an interactive yard object. The set is closed.
type PropKind int

const (
	Workbench PropKind = iota
	Fire
	Trash
	Garden
	Fence
	Shed
)

func (k PropKind) String() string {
	switch k {
	case Workbench:
		return "workbench"
	case Fire:
		return "fire"
	case Trash:
		return "trash"
	case Garden:
		return "garden"
	case Fence:
		return "fence"
	case Shed:
		return "shed"
	default:
		return "unknown"
	}
}

// Fire emission tuning.
const (
	fireEmitInterval = 100 // Milliseconds between sparks
	fireSmokeChance  = 0.3
)

// PropSpec describes a prop before it is placed in the yard.
type PropSpec struct {
	Kind     PropKind
	Box      Rect
	Frames   int
	Activity string
}

// DefaultProps returns the yard's fixed prop layout.
func DefaultProps() []PropSpec {
	return []PropSpec{
		{Kind: Workbench, Box: Rect{X: 100, Y: 100, W: 32, H: 32}, Frames: 1, Activity: "Building a chair! +1 furniture point"},
		{Kind: Fire, Box: Rect{X: 500, Y: 150, W: 24, H: 24}, Frames: 8, Activity: "Sitting by the warm fire... relaxing!"},
		{Kind: Trash, Box: Rect{X: 50, Y: 300, W: 20, H: 20}, Frames: 1, Activity: "Throwing trash over the fence! Naughty!"},
		{Kind: Garden, Box: Rect{X: 400, Y: 350, W: 28, H: 28}, Frames: 3, Activity: "Tending to the garden... peaceful!"},
		{Kind: Fence, Box: Rect{X: 200, Y: 400, W: 40, H: 16}, Frames: 1, Activity: "Checking the fence... seems sturdy!"},
		{Kind: Shed, Box: Rect{X: 550, Y: 50, W: 16, H: 16}, Frames: 1, Activity: "Rummaging through the shed..."},
	}
}

// Prop is a static interactive object. Its box never changes after creation.
type Prop struct {
	Kind     PropKind
	Activity string
	Sprite   Animation

	box      Rect
	lastEmit float64 // Fire only: timestamp of the last spark, -Inf before the first
}

// NewProp places a prop from its spec.
func NewProp(spec PropSpec, frameDelay int) (*Prop, error) {
	if spec.Box.W <= 0 || spec.Box.H <= 0 {
		return nil, fmt.Errorf("%s prop: box %vx%v must have positive size", spec.Kind, spec.Box.W, spec.Box.H)
	}
	sprite, err := NewAnimation(spec.Frames, frameDelay)
	if err != nil {
		return nil, fmt.Errorf("%s prop: %w", spec.Kind, err)
	}
	return &Prop{
		Kind:     spec.Kind,
		Activity: spec.Activity,
		Sprite:   sprite,
		box:      spec.Box,
		lastEmit: math.Inf(-1),
	}, nil
}

// Box returns the prop's bounding box.
func (p *Prop) Box() Rect {
	return p.box
}

// Update advances the prop animation. A fire also emits a spark (and
// sometimes smoke) whenever more than fireEmitInterval ms passed since its
// previous spark. The first update always emits.
func (p *Prop) Update(now float64, particles *ParticleSystem, rng Rand) {
	p.Sprite.Animate()

	if p.Kind != Fire || particles == nil {
		return
	}
	if now-p.lastEmit <= fireEmitInterval {
		return
	}
	particles.Emit(p.box.X+12, p.box.Y-5, Spark, palette.FireBright)
	if rng.Float64() > 1-fireSmokeChance {
		particles.Emit(p.box.X+8, p.box.Y-10, Smoke, palette.SmokeGray)
	}
	p.lastEmit = now
}
