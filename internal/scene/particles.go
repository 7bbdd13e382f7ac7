package scene

import (
	"image/color"

	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/object"
)

var smokeTint = color.RGBA{R: 100, G: 100, B: 100, A: 255}

// paintParticles draws sparks as fading squares and smoke as gray puffs
// that grow while they fade.
func paintParticles(p Painter, v *loop.View) {
	for _, pt := range v.Particles {
		switch pt.Kind {
		case object.Spark:
			shade(p, pt.X, pt.Y, pt.Size, pt.Size, pt.Color, pt.Fade)
		case object.Smoke:
			size := (1-pt.Fade)*4 + 1
			shade(p, pt.X-size/2, pt.Y-size/2, size, size, smokeTint, pt.Fade*pt.Fade*0.5)
		}
	}
}
