package scene

import (
	"math"

	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/object"
	"github.com/tomz197/backyard/internal/palette"
)

// Accents only the character uses.
var (
	hatGlint   = palette.Hex("#A8DAFF")
	noseShade  = palette.Hex("#DDA085")
	shirtWhite = palette.Hex("#ECF0F1")
	shirtGlint = palette.Hex("#F8F9FA")
)

// Idle eyes close for blinkClosed out of every blinkPeriod blink steps.
// A step is blinkStep idle ticks, one second at 60 ticks per second.
const (
	blinkStep   = 60
	blinkPeriod = 180
	blinkClosed = 5
)

func paintPlayer(p Painter, pv *loop.PlayerView) {
	x, y := math.Floor(pv.X), math.Floor(pv.Y)
	cycle := float64(pv.WalkCycle)

	var walk, bob float64
	if pv.Moving {
		walk = math.Sin(cycle * 0.3)
		bob = math.Sin(cycle*0.6) * 0.5
	}

	// Shadow
	shade(p, x+2, y+14, 12+math.Sin(cycle*0.3)*2, 2, palette.Black, 0.3+math.Sin(cycle*0.2)*0.1)

	if pv.Moving {
		glow := 2 + math.Sin(cycle*0.4)
		shade(p, x-glow, y-glow, 16+glow*2, 16+glow*2, palette.HatBlue, 0.1)
	}

	// Body
	bodyY := y + 8 + bob
	block(p, x, bodyY, 16, 8, palette.ShirtRed)
	block(p, x+1, bodyY, 14, 6, palette.ShirtDark)
	block(p, x+2, bodyY+1, 12, 4, palette.ShirtRed)
	block(p, x+1, bodyY, 2, 6, palette.ShirtLight)
	block(p, x+2, bodyY+1, 1, 4, palette.ShirtBright)

	// Head
	headY := y + bob
	block(p, x+4, headY, 8, 8, palette.SkinBase)
	block(p, x+5, headY+1, 6, 6, palette.SkinShade)
	block(p, x+6, headY+2, 4, 4, palette.SkinHighlight)
	block(p, x+4, headY+3, 1, 1, palette.SkinBlush)
	block(p, x+11, headY+3, 1, 1, palette.SkinBlush)

	// Hat
	block(p, x+2, headY-2, 12, 4, palette.HatBlue)
	block(p, x+3, headY-1, 10, 2, palette.HatLight)
	block(p, x+1, headY-1, 2, 1, palette.HatDark)
	block(p, x+13, headY-1, 2, 1, palette.HatDark)
	block(p, x+4, headY-2, 3, 1, palette.HatShine)
	block(p, x+5, headY-1, 2, 1, hatGlint)

	paintEyes(p, pv, x, headY)

	// Nose and mouth
	block(p, x+7, headY+4, 2, 1, palette.Nose)
	block(p, x+7, headY+5, 1, 1, noseShade)
	mouth := palette.Nose
	if pv.Moving {
		mouth = palette.ShirtDark
	}
	block(p, x+7, headY+6, 2, 1, mouth)

	// Shirt front and buttons
	block(p, x+6, bodyY+2, 4, 2, palette.White)
	block(p, x+7, bodyY+3, 2, 1, shirtWhite)
	block(p, x+6, bodyY+2, 1, 1, shirtGlint)
	block(p, x+8, bodyY+1, 1, 1, palette.PantsLight)
	block(p, x+8, bodyY+4, 1, 1, palette.PantsLight)

	// Arms swing in opposition
	left, right := walk*2, -walk*2
	block(p, x-2, bodyY+1+left, 4, 6, palette.SkinBase)
	block(p, x-1, bodyY+2+left, 2, 4, palette.SkinShade)
	block(p, x-2, bodyY+5+left, 3, 3, palette.SkinBase)
	block(p, x+14, bodyY+1+right, 4, 6, palette.SkinBase)
	block(p, x+15, bodyY+2+right, 2, 4, palette.SkinShade)
	block(p, x+15, bodyY+5+right, 3, 3, palette.SkinBase)

	// Legs
	var leftLeg, rightLeg float64
	if pv.Moving {
		leftLeg = math.Sin(cycle*0.4) * 1.5
		rightLeg = -leftLeg
	}
	block(p, x+2, bodyY+6, 5, 4, palette.PantsDark)
	block(p, x+9, bodyY+6, 5, 4, palette.PantsDark)
	block(p, x+3, bodyY+7, 3, 2, palette.PantsLight)
	block(p, x+10, bodyY+7, 3, 2, palette.PantsLight)

	block(p, x+1+leftLeg, y+14, 6, 2, palette.ShoesBrown)
	block(p, x+9+rightLeg, y+14, 6, 2, palette.ShoesBrown)
	block(p, x+2+leftLeg, y+15, 4, 1, palette.ShoesLight)
	block(p, x+10+rightLeg, y+15, 4, 1, palette.ShoesLight)
}

// eyesClosed reports whether the idle blink is showing.
func eyesClosed(idleTimer int) bool {
	return (idleTimer/blinkStep)%blinkPeriod < blinkClosed
}

func paintEyes(p Painter, pv *loop.PlayerView, x, headY float64) {
	if eyesClosed(pv.IdleTimer) {
		block(p, x+5, headY+3, 2, 1, palette.Black)
		block(p, x+9, headY+3, 2, 1, palette.Black)
		return
	}

	block(p, x+5, headY+2, 2, 2, palette.Black)
	block(p, x+9, headY+2, 2, 2, palette.Black)
	block(p, x+5, headY+2, 1, 1, palette.White)
	block(p, x+9, headY+2, 1, 1, palette.White)

	pupil := 0.0
	if pv.Facing == object.FacingRight {
		pupil = 1
	}
	block(p, x+5+pupil, headY+3, 1, 1, palette.PantsDark)
	block(p, x+9+pupil, headY+3, 1, 1, palette.PantsDark)
}
