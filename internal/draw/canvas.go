package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/tomz197/backyard/internal/palette"
)

// BlockUpperHalf paints the top sub-pixel of a cell with the foreground color
// and the bottom one with the background color.
const BlockUpperHalf = '▀'

// cell is the pair of sub-pixels a terminal cell shows.
type cell struct {
	top, bottom color.RGBA
	drawn       bool // false forces a repaint
}

// Canvas is a color drawing buffer with 2x vertical resolution using half-block
// characters. It scales from logical coordinates to terminal pixels and only
// rewrites cells that changed since the previous Render.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]
	prev           []cell       // What the terminal currently shows, per cell

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	profile   termenv.Profile
	fgSeq     map[color.RGBA]string // Cached SGR sequences per color
	bgSeq     map[color.RGBA]string
	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the scene.
// termWidth/Height are the actual terminal dimensions. Colors are degraded to
// what profile supports.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64, profile termenv.Profile) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       profile,
		fgSeq:         make(map[color.RGBA]string),
		bgSeq:         make(map[color.RGBA]string),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// A resize forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// screen was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) for repaint, so text written over the canvas is erased on the
// next Render.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	col--
	if row < 0 || row >= c.termHeight {
		return
	}
	start := max(col, 0)
	end := min(col+n, c.termWidth)
	for i := start; i < end; i++ {
		c.prev[row*c.termWidth+i].drawn = false
	}
}

// Clear fills every pixel with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
}

// At returns the pixel at terminal pixel coordinates (no scaling).
// Out-of-range coordinates return the zero color.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect paints a rectangle given in logical coordinates. alpha in (0, 1)
// blends over what is already there; alpha >= 1 is opaque and alpha <= 0
// draws nothing. A rectangle always covers at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w, c.scaleX)
	y0, y1 := span(y, h, c.scaleY)
	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			if alpha >= 1 {
				row[px] = clr
			} else {
				row[px] = palette.Blend(row[px], clr, alpha)
			}
		}
	}
}

// span maps a logical interval to a half-open pixel range.
func span(pos, size, scale float64) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Floor((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// Render writes the changed cells to w using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	var fg, bg color.RGBA
	styled := false
	cursorRow, cursorCol := -1, -1

	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth : (row*2+1)*c.termWidth]
		bottom := c.pixels[(row*2+1)*c.termWidth : (row*2+2)*c.termWidth]
		prev := c.prev[row*c.termWidth : (row+1)*c.termWidth]

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: top[col], bottom: bottom[col], drawn: true}
			if prev[col] == cur {
				continue
			}
			prev[col] = cur

			if row != cursorRow || col != cursorCol {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !styled || cur.top != fg {
				c.renderBuf.WriteString(c.sequence(cur.top, false))
				fg = cur.top
			}
			if !styled || cur.bottom != bg {
				c.renderBuf.WriteString(c.sequence(cur.bottom, true))
				bg = cur.bottom
			}
			styled = true
			c.renderBuf.WriteRune(BlockUpperHalf)
			cursorRow, cursorCol = row, col+1
		}
	}
	if !styled {
		return nil
	}
	c.renderBuf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString(termenv.CSI)
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sequence returns the SGR sequence selecting clr as foreground or background
// in the canvas profile.
func (c *Canvas) sequence(clr color.RGBA, background bool) string {
	cache := c.fgSeq
	if background {
		cache = c.bgSeq
	}
	if s, ok := cache[clr]; ok {
		return s
	}

	cf, _ := colorful.MakeColor(color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 255})
	s := ""
	if seq := c.profile.Color(cf.Hex()).Sequence(background); seq != "" {
		s = termenv.CSI + seq + "m"
	}
	cache[clr] = s
	return s
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			writeAt(&buf, left, top, "┌"+line+"┐")
			writeAt(&buf, left, bottom, "└"+line+"┘")
		} else {
			writeAt(&buf, c.offsetCol+1, top, line)
			writeAt(&buf, c.offsetCol+1, bottom, line)
		}
	}

	if hasH {
		startRow, endRow := top+1, bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			writeAt(&buf, left, row, "│")
			writeAt(&buf, right, row, "│")
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func writeAt(buf *strings.Builder, col, row int, s string) {
	buf.WriteString(termenv.CSI)
	buf.WriteString(strconv.Itoa(row))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(col))
	buf.WriteByte('H')
	buf.WriteString(s)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position
// (col, row) relative to the canvas origin.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
