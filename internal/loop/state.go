package loop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/object"
	"github.com/tomz197/backyard/internal/palette"
)

// Options tweaks how a Yard is assembled. The zero value is usable.
type Options struct {
	Rand   object.Rand       // Random source for particles; nil uses a time-seeded source
	Sink   ActivitySink      // Optional activity message receiver
	Logger *log.Logger       // nil uses log.Default()
	Props  []object.PropSpec // nil uses object.DefaultProps()
}

// Yard is the whole simulation context: every piece of state a tick reads
// or writes lives here, owned by the orchestrator driving it.
type Yard struct {
	Bounds    object.Bounds
	Player    *object.Player
	Props     []*object.Prop
	Particles *object.ParticleSystem
	Days      *DayTracker
	Activity  *Activity

	// OnDayChange, if set, is called after the day counter increments.
	OnDayChange func(day int)

	rng    object.Rand
	logger *log.Logger
}

// NewYard validates cfg and builds a yard with the player at its start position.
func NewYard(cfg config.Config, opts Options) (*Yard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	specs := opts.Props
	if specs == nil {
		specs = object.DefaultProps()
	}

	player, err := object.NewPlayer(config.PlayerStartX, config.PlayerStartY, config.PlayerSize,
		cfg.PlayerSpeed, config.PlayerFrames, cfg.FrameDelay)
	if err != nil {
		return nil, fmt.Errorf("new yard: %w", err)
	}

	props := make([]*object.Prop, 0, len(specs))
	for _, spec := range specs {
		prop, err := object.NewProp(spec, cfg.FrameDelay)
		if err != nil {
			return nil, fmt.Errorf("new yard: %w", err)
		}
		props = append(props, prop)
	}

	return &Yard{
		Bounds: object.Bounds{
			Width:  cfg.WorldWidth,
			Height: cfg.WorldHeight,
			Margin: config.WorldMargin,
		},
		Player:    player,
		Props:     props,
		Particles: object.NewParticleSystem(rng, cfg.MaxParticles, config.Gravity),
		Days:      NewDayTracker(cfg.DayLength),
		Activity:  NewActivity(cfg.ActivityDuration, opts.Sink),
		rng:       rng,
		logger:    logger,
	}, nil
}

// UpdateTime feeds delta ms to the day tracker. A new day sets off a burst
// of sparks along the top edge.
func (y *Yard) UpdateTime(delta float64) bool {
	if !y.Days.Advance(delta) {
		return false
	}
	for i := 0; i < config.DayBurstCount; i++ {
		y.Particles.Emit(y.rng.Float64()*y.Bounds.Width, config.DayBurstY, object.Spark, palette.Gold)
	}
	y.logger.Info("new day", "day", y.Days.Day)
	if y.OnDayChange != nil {
		y.OnDayChange(y.Days.Day)
	}
	return true
}

// UpdatePlayer moves the player from this tick's input.
func (y *Yard) UpdatePlayer(in object.Input) {
	y.Player.Update(in, y.Bounds)
}

// UpdateParticles advances and expires particles.
func (y *Yard) UpdateParticles() {
	y.Particles.Update()
}

// UpdateProps animates every prop and lets the fire emit.
func (y *Yard) UpdateProps(now float64) {
	for _, prop := range y.Props {
		prop.Update(now, y.Particles, y.rng)
	}
}
