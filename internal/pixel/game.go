// Package pixel hosts one yard in a desktop window using Ebiten.
package pixel

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/object"
	"github.com/tomz197/backyard/internal/physics"
	"github.com/tomz197/backyard/internal/scene"
)

const controlsHint = "WASD/arrows move  SPACE interact  ESC quit"

// Game implements ebiten.Game around a yard orchestrator.
type Game struct {
	orch    *loop.Orchestrator
	view    *loop.View // Last rendered frame, valid until the next Update
	world   object.Bounds
	keys    KeyFunc
	start   time.Time
	now     func() time.Time
	banner  string
	day     int
	logger  *log.Logger
	tps     int
	stopped bool
}

// Options configures the window host.
type Options struct {
	Config *config.Config // nil uses config.Default()
	Logger *log.Logger    // nil uses log.Default()
	Rand   object.Rand    // nil uses a time-seeded source
	Keys   KeyFunc        // nil reads the keyboard
}

// NewGame builds a fresh yard for a window.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keys := opts.Keys
	if keys == nil {
		keys = ebiten.IsKeyPressed
	}

	g := &Game{
		keys:   keys,
		now:    time.Now,
		logger: logger,
		tps:    cfg.FPS,
	}
	yard, err := loop.NewYard(cfg, loop.Options{
		Rand:   opts.Rand,
		Sink:   g,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}
	yard.OnDayChange = func(day int) {
		g.day = day
	}
	g.world = yard.Bounds
	g.orch = loop.NewOrchestrator(yard, g)
	return g, nil
}

// ShowActivity implements loop.ActivitySink.
func (g *Game) ShowActivity(msg string) {
	g.banner = msg
}

// HideActivity implements loop.ActivitySink.
func (g *Game) HideActivity() {
	g.banner = ""
}

// Render implements loop.Renderer. Ebiten draws on its own schedule, so the
// view is only kept for the following Draw.
func (g *Game) Render(v *loop.View) error {
	g.view = v
	return nil
}

// Update implements ebiten.Game: one simulation tick per Ebiten tick.
func (g *Game) Update() error {
	if g.stopped {
		return ebiten.Termination
	}
	in := readInput(g.keys)
	if in.Quit() {
		g.stopped = true
		g.logger.Info("window closed by user")
		return ebiten.Termination
	}

	now := g.now()
	if g.start.IsZero() {
		g.start = now
	}
	ms := float64(now.Sub(g.start)) / float64(time.Millisecond)
	return g.orch.Frame(ms, in)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.view == nil {
		return
	}
	scene.Paint(imagePainter{dst: screen}, g.view)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Day %d", g.day), 20, 16)
	if g.banner != "" {
		x := (int(g.world.Width) - len(g.banner)*debugCharWidth) / 2
		ebitenutil.DebugPrintAt(screen, g.banner, max(x, 0), 36)
	}
	x := (int(g.world.Width) - len(controlsHint)*debugCharWidth) / 2
	ebitenutil.DebugPrintAt(screen, controlsHint, max(x, 0), int(g.world.Height)-30)
}

// debugCharWidth is the glyph width of Ebiten's debug font.
const debugCharWidth = 6

// Layout implements ebiten.Game. The screen is always the world size;
// Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Yard returns the simulation this window drives.
func (g *Game) Yard() *loop.Yard {
	return g.orch.Yard()
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string, scale int) error {
	ebiten.SetWindowSize(int(g.world.Width)*scale, int(g.world.Height)*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("pixel: %w", err)
	}
	return nil
}

// imagePainter fills rectangles on an Ebiten image.
type imagePainter struct {
	dst *ebiten.Image
}

func (p imagePainter) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	alpha = physics.Clamp(alpha, 0, 1)
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
