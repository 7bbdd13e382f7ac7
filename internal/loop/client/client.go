// Package client hosts one yard in a terminal: it turns key bytes into input,
// drives the frame loop and draws each frame as half-block pixels with a text HUD.
package client

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/backyard/internal/draw"
	"github.com/tomz197/backyard/internal/input"
	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/object"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	orch         *loop.Orchestrator
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	hud          *hud
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	idleLimit    bool
	logger       *log.Logger
	username     string
	world        object.Bounds
}

// Options configures the client. The zero value runs a default yard on
// the local terminal.
type Options struct {
	TermSizeFunc   draw.TermSizeFunc
	Username       string
	Config         *config.Config  // nil uses config.Default()
	Logger         *log.Logger     // nil uses log.Default()
	Rand           object.Rand     // nil uses a time-seeded source
	Profile        termenv.Profile // Color support of the terminal
	IdleDisconnect bool            // Warn and then disconnect idle users
}

// NewClient builds a fresh yard and prepares the terminal for it.
func NewClient(r io.Reader, w io.Writer, opts Options) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	state := NewClientState(time.Now())
	yard, err := loop.NewYard(cfg, loop.Options{
		Rand:   opts.Rand,
		Sink:   state,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	yard.OnDayChange = func(day int) {
		state.Day = day
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		logger.Warn("terminal size unavailable, using maximum", "err", err)
		termWidth, termHeight = config.MaxTermWidth, config.MaxTermHeight
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, yard.Bounds)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, yard.Bounds.Width, yard.Bounds.Height, opts.Profile)
	canvas.SetOffset(offsetCol, offsetRow)

	c := &Client{
		state:        state,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		hud:          newHUD(w, opts.Profile),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		frameTime:    cfg.FrameTime(),
		idleLimit:    opts.IdleDisconnect,
		logger:       logger,
		username:     opts.Username,
		world:        yard.Bounds,
	}
	c.orch = loop.NewOrchestrator(yard, c)
	return c, nil
}

// Yard returns the simulation this client drives.
func (c *Client) Yard() *loop.Yard {
	return c.orch.Yard()
}

// Run starts the client loop. Blocks until the user quits, the input
// stream closes, ctx is cancelled or drawing fails.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)

	err := loop.Run(ctx, c.orch, c.frameTime, c.poll)

	draw.ClearScreen(c.writer)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	return nil
}

// poll samples input and the terminal size ahead of each frame.
func (c *Client) poll() input.Input {
	c.processInput()
	c.updateScreen()
	if !c.state.Running {
		c.state.Input.Set(input.KeyQuit, true)
	}
	return c.state.Input
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	now := time.Now()

	if len(c.state.Input.Pressed) > 0 {
		c.state.lastInput = now
		if c.state.isInactive {
			// The key that dismisses the warning must not also walk
			input.ResetKeyInput(c.inputStream)
			c.state.Input = input.Input{Pressed: c.state.Input.Pressed}
			c.state.isInactive = false
		}
	} else if c.idleLimit {
		idle := now.Sub(c.state.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("disconnecting idle user", "user", c.username)
			c.state.Running = false
		} else if idle > config.InactivityWarnUser {
			c.state.isInactive = true
		}
	}

	if c.state.Input.Quit() {
		c.state.Running = false
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight, c.world)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.state.needsClear = true
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits the world's aspect ratio into the terminal, capped at the
// max render resolution, and computes the centering offset for the render area.
// Half-block cells hold two square pixels, so a cell is one pixel wide and two tall.
func clampTermSize(termWidth, termHeight int, world object.Bounds) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, config.MaxTermWidth), 1)
	renderHeight = max(min(termHeight, config.MaxTermHeight), 1)

	// columns / (rows*2) should equal width / height
	aspect := world.Width / world.Height
	if cols := int(math.Round(float64(renderHeight*2) * aspect)); cols < renderWidth {
		renderWidth = max(cols, 1)
	} else {
		renderHeight = max(int(math.Round(float64(renderWidth)/aspect/2)), 1)
	}

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
