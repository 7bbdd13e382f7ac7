package loop

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/backyard/internal/input"
	"github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/object"
)

func TestNewYardRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"Zero speed", func(c *config.Config) { c.PlayerSpeed = 0 }},
		{"Spawn outside a small world", func(c *config.Config) { c.WorldWidth, c.WorldHeight = 200, 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			_, err := NewYard(cfg, Options{})
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("Expected %v, got %v", config.ErrInvalidConfig, err)
			}
		})
	}
}

func TestNewYardPlayerStartsInBounds(t *testing.T) {
	cfg := config.Default()
	cfg.WorldWidth = config.PlayerStartX + config.PlayerSize + config.WorldMargin
	cfg.WorldHeight = config.PlayerStartY + config.PlayerSize + config.WorldMargin
	y, err := NewYard(cfg, Options{Rand: constRand(0.5), Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("NewYard: %v", err)
	}

	b := y.Bounds
	for i := 0; i < 100; i++ {
		y.UpdatePlayer(input.Of(input.KeyLeft, input.KeyUp))
	}
	p := y.Player
	if p.X < b.Margin || p.X > b.Width-p.Width-b.Margin || p.Y < b.Margin || p.Y > b.Height-p.Height-b.Margin {
		t.Errorf("Expected player inside the margins, got (%v, %v)", p.X, p.Y)
	}
	if p.X == config.PlayerStartX || p.Y == config.PlayerStartY {
		t.Errorf("Expected player to walk away from the spawn, got (%v, %v)", p.X, p.Y)
	}
}

func TestNewYardDefaults(t *testing.T) {
	y := newTestYard(t, nil)
	if y.Player.X != config.PlayerStartX || y.Player.Y != config.PlayerStartY {
		t.Errorf("Expected player at start, got (%v, %v)", y.Player.X, y.Player.Y)
	}
	if len(y.Props) != 6 {
		t.Errorf("Expected 6 props, got %d", len(y.Props))
	}
	if y.Days.Day != 0 || y.Activity.Visible {
		t.Error("Expected day 0 with hidden activity")
	}
}

func TestUpdateTimeDayBurst(t *testing.T) {
	y := newTestYard(t, nil)
	var got []int
	y.OnDayChange = func(day int) { got = append(got, day) }

	if y.UpdateTime(14000) {
		t.Fatal("Expected no new day yet")
	}
	if !y.UpdateTime(1000) {
		t.Fatal("Expected a new day")
	}
	if y.Particles.Len() != config.DayBurstCount {
		t.Errorf("Expected %d burst particles, got %d", config.DayBurstCount, y.Particles.Len())
	}
	p := y.Particles.At(0)
	if p.Y != config.DayBurstY || p.X != 320 {
		t.Errorf("Expected burst at (320, %v), got (%v, %v)", config.DayBurstY, p.X, p.Y)
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected OnDayChange(1), got %v", got)
	}
}

func TestFrameFirstCallSeeds(t *testing.T) {
	y := newTestYard(t, nil)
	var views []View
	o := NewOrchestrator(y, RendererFunc(func(v *View) error {
		views = append(views, *v)
		return nil
	}))

	if o.Started() {
		t.Fatal("Expected orchestrator not started")
	}
	if err := o.Frame(50000, input.Input{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !o.Started() {
		t.Error("Expected orchestrator started")
	}
	if y.Days.Day != 0 || y.Days.Elapsed() != 0 {
		t.Errorf("Expected first frame to advance nothing, got day %d elapsed %v", y.Days.Day, y.Days.Elapsed())
	}

	if err := o.Frame(50016, input.Of(input.KeyRight)); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if y.Days.Elapsed() != 16 {
		t.Errorf("Expected elapsed 16, got %v", y.Days.Elapsed())
	}
	if len(views) != 2 {
		t.Fatalf("Expected 2 renders, got %d", len(views))
	}
	last := views[1]
	if last.Now != 50016 || last.Player.X != 322 || last.Player.Facing != object.FacingRight {
		t.Errorf("Unexpected view: now=%v x=%v facing=%v", last.Now, last.Player.X, last.Player.Facing)
	}
	if len(last.Props) != 6 {
		t.Errorf("Expected 6 prop views, got %d", len(last.Props))
	}
}

func TestFrameInteractionAndExpiry(t *testing.T) {
	sink := &recordingSink{}
	y := newTestYard(t, sink)
	y.Player.X, y.Player.Y = 100, 100
	o := NewOrchestrator(y, nil)

	if err := o.Frame(0, input.Of(input.KeyInteract)); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if !y.Activity.Visible {
		t.Fatal("Expected activity visible after interaction")
	}
	if err := o.Frame(2500, input.Input{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if y.Activity.Visible || sink.hidden != 1 {
		t.Errorf("Expected activity hidden once, got visible=%v hides=%d", y.Activity.Visible, sink.hidden)
	}
}

func TestFrameFireEmitsAtTimeZero(t *testing.T) {
	y := newTestYard(t, nil)
	o := NewOrchestrator(y, nil)

	if err := o.Frame(0, input.Input{}); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	// Rand 0.5 never passes the smoke roll, so the fire adds a single spark.
	if y.Particles.Len() != 1 {
		t.Fatalf("Expected 1 fire spark on the first frame, got %d", y.Particles.Len())
	}
	if p := y.Particles.At(0); p.Kind != object.Spark || p.X != 512 {
		t.Errorf("Expected spark at x=512, got %s at %v", p.Kind, p.X)
	}
}

func TestFrameRendererError(t *testing.T) {
	want := errors.New("boom")
	o := NewOrchestrator(newTestYard(t, nil), RendererFunc(func(*View) error { return want }))
	if err := o.Frame(0, input.Input{}); !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	o := NewOrchestrator(newTestYard(t, nil), nil)
	polls := 0
	poll := func() input.Input {
		polls++
		if polls == 3 {
			return input.Of(input.KeyQuit)
		}
		return input.Input{}
	}

	if err := Run(context.Background(), o, time.Millisecond, poll); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if polls != 3 {
		t.Errorf("Expected 3 polls, got %d", polls)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	o := NewOrchestrator(newTestYard(t, nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, o, time.Hour, func() input.Input { return input.Input{} }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !o.Started() {
		t.Error("Expected one frame before cancel was noticed")
	}
}
