// Package palette holds the yard's 16-bit era color set and blending helpers.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#RRGGBB" color. It panics on malformed input and is meant
// for package-level palette entries.
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad hex color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Blend mixes src over dst with the given opacity (0 keeps dst, 1 yields src).
func Blend(dst, src color.RGBA, alpha float64) color.RGBA {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	out := toColorful(dst).BlendRgb(toColorful(src), alpha).Clamped()
	r, g, b := out.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Character
var (
	SkinBase      = Hex("#FDBCB4")
	SkinShade     = Hex("#F4A79E")
	SkinHighlight = Hex("#F7B69E")
	SkinBlush     = Hex("#FAB1A0")
	ShirtRed      = Hex("#E74C3C")
	ShirtDark     = Hex("#C0392B")
	ShirtLight    = Hex("#F85C5C")
	ShirtBright   = Hex("#FF7979")
	HatBlue       = Hex("#3498DB")
	HatLight      = Hex("#5DADE2")
	HatDark       = Hex("#2980B9")
	HatShine      = Hex("#74B9FF")
	PantsDark     = Hex("#2C3E50")
	PantsLight    = Hex("#34495E")
	ShoesBrown    = Hex("#8B4513")
	ShoesLight    = Hex("#A0522D")
	Nose          = Hex("#E8A085")
)

// Environment
var (
	GrassBase  = Hex("#229954")
	GrassLight = Hex("#2ECC71")
	GrassDark  = Hex("#1E8449")
	DirtBase   = Hex("#8B4513")
	DirtLight  = Hex("#A0522D")
	DirtSand   = Hex("#CD853F")
)

// Props
var (
	WoodBase    = Hex("#8B4513")
	WoodLight   = Hex("#A0522D")
	WoodDark    = Hex("#654321")
	MetalBase   = Hex("#7F8C8D")
	MetalLight  = Hex("#BDC3C7")
	MetalShade  = Hex("#95A5A6")
	MetalDark   = Hex("#5D6D7E")
	FireBase    = Hex("#FF6B35")
	FireRed     = Hex("#FF4757")
	FireBright  = Hex("#F1C40F")
	FireOrange  = Hex("#E67E22")
	FireAmber   = Hex("#F39C12")
	FenceViolet = Hex("#5D4E75")
	Gold        = Hex("#FFD700")
	Orange      = Hex("#FFA500")
	SmokeGray   = Hex("#666666")
	Purple      = Hex("#9B59B6")
)

// UI
var (
	White = Hex("#FFFFFF")
	Black = Hex("#000000")
)

// Flowers cycles through the background flower petal colors.
var Flowers = []color.RGBA{ShirtRed, FireBright, Purple, FireOrange, White}
