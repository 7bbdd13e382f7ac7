// Package config centralizes all tunable yard parameters.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	envconfig "github.com/tomz197/backyard/internal/config"
)

// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid yard config")

// World resolution - the fixed logical play area in world units.
// Renderers scale this to whatever surface they draw on.
const (
	WorldWidth  = 640
	WorldHeight = 480
	WorldMargin = 12 // Border fence thickness the player cannot enter
)

// Player
const (
	PlayerStartX = 320
	PlayerStartY = 240
	PlayerSize   = 16
	PlayerSpeed  = 2.0 // Units per tick
	PlayerFrames = 4
)

// Animation
const (
	FrameDelay = 8 // Ticks per sprite frame
)

// Particles
const (
	Gravity       = 0.1  // Units per tick²
	MaxParticles  = 2048 // Live particle cap, oldest evicted first
	DayBurstCount = 10
	DayBurstY     = -10
)

// Time
const (
	DayLength        = 15000 // Milliseconds per in-game day
	ActivityDuration = 2500  // Milliseconds an activity message stays visible
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Inactivity (idle-disconnecting hosts only)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Terminal render area limits (columns, rows). Larger terminals get a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Config holds the tunables a yard is built from.
type Config struct {
	WorldWidth       float64
	WorldHeight      float64
	PlayerSpeed      float64
	FrameDelay       int
	MaxParticles     int
	DayLength        float64 // Milliseconds
	ActivityDuration float64 // Milliseconds
	FPS              int
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		WorldWidth:       WorldWidth,
		WorldHeight:      WorldHeight,
		PlayerSpeed:      PlayerSpeed,
		FrameDelay:       FrameDelay,
		MaxParticles:     MaxParticles,
		DayLength:        DayLength,
		ActivityDuration: ActivityDuration,
		FPS:              TargetFPS,
	}
}

// FromEnv returns Default overridden by YARD_* environment variables.
func FromEnv() Config {
	cfg := Default()
	cfg.PlayerSpeed = envconfig.GetEnvFloat("YARD_PLAYER_SPEED", cfg.PlayerSpeed)
	cfg.MaxParticles = envconfig.GetEnvInt("YARD_MAX_PARTICLES", cfg.MaxParticles)
	cfg.DayLength = envconfig.GetEnvFloat("YARD_DAY_LENGTH_MS", cfg.DayLength)
	cfg.FPS = envconfig.GetEnvInt("YARD_FPS", cfg.FPS)
	return cfg
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	// The player spawns at a fixed spot that must lie inside the margins.
	const (
		minWidth  = PlayerStartX + PlayerSize + WorldMargin
		minHeight = PlayerStartY + PlayerSize + WorldMargin
	)
	switch {
	case !finitePositive(c.WorldWidth) || c.WorldWidth < minWidth:
		return fmt.Errorf("%w: world width %v must be at least %d", ErrInvalidConfig, c.WorldWidth, minWidth)
	case !finitePositive(c.WorldHeight) || c.WorldHeight < minHeight:
		return fmt.Errorf("%w: world height %v must be at least %d", ErrInvalidConfig, c.WorldHeight, minHeight)
	case !finitePositive(c.PlayerSpeed):
		return fmt.Errorf("%w: player speed must be positive, got %v", ErrInvalidConfig, c.PlayerSpeed)
	case c.FrameDelay <= 0:
		return fmt.Errorf("%w: frame delay must be positive, got %d", ErrInvalidConfig, c.FrameDelay)
	case c.MaxParticles <= 0:
		return fmt.Errorf("%w: particle cap must be positive, got %d", ErrInvalidConfig, c.MaxParticles)
	case !finitePositive(c.DayLength):
		return fmt.Errorf("%w: day length must be positive, got %v", ErrInvalidConfig, c.DayLength)
	case !finitePositive(c.ActivityDuration):
		return fmt.Errorf("%w: activity duration must be positive, got %v", ErrInvalidConfig, c.ActivityDuration)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// FrameTime is the host frame interval for the configured FPS.
func (c Config) FrameTime() time.Duration {
	if c.FPS <= 0 {
		return TargetFrameTime
	}
	return time.Second / time.Duration(c.FPS)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
