package object

import (
	"image/color"

	"github.com/tomz197/backyard/internal/physics"
)

// ParticleKind selects how a particle is drawn.
type ParticleKind int

const (
	Spark ParticleKind = iota // Solid square that fades out
	Smoke                     // Gray puff that grows as it fades
)

func (k ParticleKind) String() string {
	switch k {
	case Spark:
		return "spark"
	case Smoke:
		return "smoke"
	default:
		return "unknown"
	}
}

// Particle is a short-lived visual effect. Lifetimes are counted in ticks.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity per tick
	Life    float64 // Ticks remaining
	MaxLife float64 // Reference lifetime for the fade ratio
	Size    float64
	Kind    ParticleKind
	Color   color.RGBA
}

// Fade returns Life/MaxLife clamped to [0, 1]. Life and MaxLife are drawn
// independently, so the raw ratio can start above 1.
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return physics.Clamp(p.Life/p.MaxLife, 0, 1)
}

// ParticleView is the read-only particle data handed to renderers.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Fade  float64
	Kind  ParticleKind
	Color color.RGBA
}

// ParticleSystem owns every live particle. Nothing outside the system keeps
// references to individual particles.
type ParticleSystem struct {
	particles []Particle
	rng       Rand
	gravity   float64
	max       int
	evicted   int
}

// NewParticleSystem creates an empty system. maxParticles caps the live
// collection; when full, the oldest particle is evicted to make room.
func NewParticleSystem(rng Rand, maxParticles int, gravity float64) *ParticleSystem {
	if maxParticles < 1 {
		maxParticles = 1
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, min(maxParticles, 256)),
		rng:       rng,
		gravity:   gravity,
		max:       maxParticles,
	}
}

// Emit creates a particle at (x, y) with randomized motion, lifetime and size.
// Horizontal speed is in [-1, 1), vertical in [-1.5, -0.5) so particles rise
// before gravity pulls them back. Life and MaxLife are both in [30, 60) but
// drawn separately.
func (s *ParticleSystem) Emit(x, y float64, kind ParticleKind, c color.RGBA) {
	p := Particle{
		X:     x,
		Y:     y,
		VX:    (s.rng.Float64() - 0.5) * 2,
		VY:    s.rng.Float64() - 1.5,
		Life:  30 + s.rng.Float64()*30,
		Kind:  kind,
		Color: c,
	}
	p.MaxLife = 30 + s.rng.Float64()*30
	p.Size = 1 + s.rng.Float64()*2
	s.Spawn(p)
}

// Spawn adds a fully specified particle, evicting the oldest when at capacity.
func (s *ParticleSystem) Spawn(p Particle) {
	if len(s.particles) >= s.max {
		drop := len(s.particles) - s.max + 1
		n := copy(s.particles, s.particles[drop:])
		s.particles = s.particles[:n]
		s.evicted += drop
	}
	s.particles = append(s.particles, p)
}

// Update moves every particle, applies gravity and ages it by one tick.
// Particles whose lifetime reaches zero are removed; survivors keep their order.
func (s *ParticleSystem) Update() {
	kept := s.particles[:0] // reuse backing array
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += s.gravity
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	clear(s.particles[len(kept):])
	s.particles = kept
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Evicted returns how many particles were dropped by the cap so far.
func (s *ParticleSystem) Evicted() int {
	return s.evicted
}

// At returns a copy of the i-th live particle (oldest first).
func (s *ParticleSystem) At(i int) Particle {
	return s.particles[i]
}

// AppendViews appends a view of every live particle to dst and returns it.
// Pass the previous frame's slice[:0] to avoid allocations.
func (s *ParticleSystem) AppendViews(dst []ParticleView) []ParticleView {
	for _, p := range s.particles {
		dst = append(dst, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			Fade:  p.Fade(),
			Kind:  p.Kind,
			Color: p.Color,
		})
	}
	return dst
}
