// Package scene paints a yard View as flat colored rectangles. Any surface
// that can fill a rectangle, a terminal canvas or a pixel window, can show it.
package scene

import (
	"image/color"
	"math"

	"github.com/tomz197/backyard/internal/loop"
)

// Painter fills axis-aligned rectangles in world coordinates. alpha is the
// opacity in [0, 1].
type Painter interface {
	FillRect(x, y, w, h float64, c color.RGBA, alpha float64)
}

// Paint draws the whole frame back to front: ground, props, player, particles.
func Paint(p Painter, v *loop.View) {
	paintBackground(p, v.World.Width, v.World.Height)
	for i := range v.Props {
		paintProp(p, &v.Props[i], v.Now)
	}
	paintPlayer(p, &v.Player)
	paintParticles(p, v)
}

// block fills an opaque rectangle snapped to whole world units.
func block(p Painter, x, y, w, h float64, c color.RGBA) {
	shade(p, x, y, w, h, c, 1)
}

// shade fills a translucent rectangle snapped to whole world units.
func shade(p Painter, x, y, w, h float64, c color.RGBA, alpha float64) {
	w, h = math.Floor(w), math.Floor(h)
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	p.FillRect(math.Floor(x), math.Floor(y), w, h, c, alpha)
}
