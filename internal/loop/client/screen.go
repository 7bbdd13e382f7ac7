package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/backyard/internal/draw"
	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/loop/config"
	"github.com/tomz197/backyard/internal/palette"
	"github.com/tomz197/backyard/internal/scene"
)

const controlsHint = "WASD/arrows move  SPACE interact  Q quit"

// HUD anchors in world units, matching the window host's layout.
const (
	dayLabelX = 20
	dayLabelY = 16
	bannerY   = 36
)

// hud holds the lipgloss styles for text drawn over the canvas.
type hud struct {
	day     lipgloss.Style
	banner  lipgloss.Style
	hint    lipgloss.Style
	warning lipgloss.Style
}

// newHUD binds the styles to w with a fixed color profile, so SSH sessions
// get colors without probing the remote terminal.
func newHUD(w io.Writer, profile termenv.Profile) *hud {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return &hud{
		day: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")).
			Background(lipgloss.Color("#654321")).
			Padding(0, 1),
		banner: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2C3E50")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F39C12")).
			Padding(0, 1),
		hint: r.NewStyle().
			Foreground(lipgloss.Color("#ECF0F1")).
			Background(lipgloss.Color("#1E8449")),
		warning: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C0392B")).
			Padding(1, 2).
			Align(lipgloss.Center),
	}
}

// Render implements loop.Renderer: paints the view and overlays the HUD.
func (c *Client) Render(v *loop.View) error {
	// On inactivity transitions or resizes, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	if c.state.isInactive != c.state.wasInactive {
		c.state.needsClear = true
		c.state.wasInactive = c.state.isInactive
	}
	if c.state.needsClear {
		draw.ClearScreen(c.chunkWriter)
		c.canvas.ForceRedraw()
		c.state.needsClear = false
	}

	c.canvas.Clear(palette.Black)
	scene.Paint(c.canvas, v)

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI()
	return c.chunkWriter.Flush()
}

// drawUI draws the HUD overlay.
// Every overlaid cell is marked dirty so the canvas repaints it next frame
// once the text moves or disappears.
func (c *Client) drawUI() {
	width := c.canvas.TerminalWidth()
	height := c.canvas.TerminalHeight()

	if c.state.isInactive {
		c.drawInactivityScreen(width, height)
		return
	}

	dayCol, dayRow := c.canvas.LogicalToTerminal(dayLabelX, dayLabelY)
	c.writeBlock(dayCol, dayRow, c.hud.day.Render(fmt.Sprintf("Day %d", c.state.Day)))

	if c.username != "" {
		name := c.username
		c.writeBlock(width-lipgloss.Width(name)-1, 1, c.hud.hint.Render(name))
	}

	if c.state.Banner != "" {
		banner := c.hud.banner.MaxWidth(width).Render(c.state.Banner)
		_, row := c.canvas.LogicalToTerminal(0, bannerY)
		c.writeBlock((width-lipgloss.Width(banner))/2+1, max(row, dayRow+1), banner)
	}

	if lipgloss.Width(controlsHint) <= width {
		c.writeBlock((width-lipgloss.Width(controlsHint))/2+1, height, c.hud.hint.Render(controlsHint))
	}
}

// drawInactivityScreen draws the inactivity warning.
func (c *Client) drawInactivityScreen(width, height int) {
	left := int(config.InactivityDisconnectUser - time.Since(c.state.lastInput).Seconds())
	msg := fmt.Sprintf("INACTIVITY WARNING\n\nYou will be disconnected in %d seconds.\nPress any key to continue.", max(left, 0))
	box := c.hud.warning.MaxWidth(width).Render(msg)
	c.writeBlock((width-lipgloss.Width(box))/2+1, (height-lipgloss.Height(box))/2+1, box)
}

// writeBlock writes a possibly multi-line string with its top-left corner at
// the 1-based canvas position (col, row).
func (c *Client) writeBlock(col, row int, s string) {
	col = max(col, 1)
	for i, line := range strings.Split(s, "\n") {
		r := row + i
		if r < 1 || r > c.canvas.TerminalHeight() {
			continue
		}
		c.chunkWriter.WriteAt(col, r, line)
		c.canvas.MarkTextDirty(col, r, lipgloss.Width(line))
	}
}
