package scene

import (
	"image/color"
	"math"

	"github.com/tomz197/backyard/internal/loop"
	"github.com/tomz197/backyard/internal/object"
	"github.com/tomz197/backyard/internal/palette"
)

func paintProp(p Painter, prop *loop.PropView, now float64) {
	x, y := math.Floor(prop.Box.X), math.Floor(prop.Box.Y)
	w, h := prop.Box.W, prop.Box.H

	switch prop.Kind {
	case object.Fire:
		paintFire(p, x, y, w, h, now)
	case object.Workbench:
		paintWorkbench(p, x, y, w, h)
	case object.Garden:
		paintGarden(p, x, y, w, h, now)
	case object.Trash:
		paintTrash(p, x, y, w, h)
	case object.Fence:
		paintFencePiece(p, x, y, w, h)
	case object.Shed:
		paintShed(p, x, y, w, h)
	}
}

func paintFire(p Painter, x, y, w, h, now float64) {
	block(p, x, y, w, h, palette.FireBase)
	block(p, x+2, y+2, w-4, h-4, palette.FireRed)

	t := now * 0.01
	o1 := math.Sin(t) * 2
	o2 := math.Sin(t+1) * 1.5
	o3 := math.Sin(t + 2)

	block(p, x+4+o1, y-8, 4, 8, palette.FireBright)
	block(p, x+8+o2, y-12, 4, 12, palette.FireOrange)
	block(p, x+12+o3, y-6, 4, 6, palette.FireAmber)
	block(p, x+16+o1, y-4, 2, 4, palette.FireBase)

	block(p, x+6+math.Sin(t*2)*3, y-14, 1, 1, palette.Gold)
	block(p, x+18+math.Cos(t*1.5)*2, y-10, 1, 1, palette.Gold)
	block(p, x+10+math.Sin(t*3)*2, y-16, 1, 1, palette.Orange)
}

func paintWorkbench(p Painter, x, y, w, h float64) {
	block(p, x, y, w, h, palette.WoodBase)
	block(p, x+2, y+2, w-4, h-4, palette.WoodLight)
	block(p, x+4, y+4, w-8, h-8, palette.WoodBase)

	// Tools
	block(p, x+6, y+6, 4, 4, palette.MetalBase)
	block(p, x+7, y+7, 2, 2, palette.MetalLight)
	block(p, x+18, y+8, 8, 4, palette.FireAmber)
	block(p, x+19, y+9, 6, 2, palette.Gold)

	// Hammer
	block(p, x+12, y+2, 2, 8, palette.WoodBase)
	block(p, x+10, y+2, 6, 3, palette.MetalBase)
	block(p, x+11, y+2, 4, 1, palette.MetalLight)

	// Shavings
	block(p, x+24, y+16, 2, 1, palette.WoodLight)
	block(p, x+22, y+18, 3, 1, palette.WoodLight)
}

func paintGarden(p Painter, x, y, w, h, now float64) {
	block(p, x, y, w, h, palette.GrassLight)
	block(p, x+2, y+2, w-4, h-4, palette.GrassBase)

	block(p, x+4, y+20, w-8, 8, palette.DirtBase)
	block(p, x+5, y+21, w-10, 6, palette.DirtLight)

	sway := math.Sin(now*0.002) * 0.5
	plant := func(dx, top, stem float64, bloom color.RGBA) {
		block(p, x+dx, y+top, 4, stem, palette.GrassLight)
		block(p, x+dx+1, y+top+1, 2, stem-2, palette.GrassBase)
		block(p, x+dx+2, y+top-2, 2, 2, bloom)
	}
	plant(4+sway, -4, 12, palette.ShirtRed)
	plant(12-sway, -6, 14, palette.FireBright)
	plant(20+sway*0.5, -2, 10, palette.Purple)
}

func paintTrash(p Painter, x, y, w, h float64) {
	block(p, x, y, w, h, palette.MetalBase)
	block(p, x+2, y+2, w-4, h-4, palette.MetalShade)
	block(p, x+1, y-2, w-2, 3, palette.MetalBase)
	block(p, x+8, y-4, 4, 2, palette.MetalShade)

	block(p, x+1, y+1, 1, h-2, palette.MetalLight)
	block(p, x+w-2, y+1, 1, h-2, palette.MetalDark)
}

func paintFencePiece(p Painter, x, y, w, h float64) {
	block(p, x, y, w, h, palette.WoodDark)
	block(p, x+2, y+2, w-4, h-4, palette.FenceViolet)

	for i := 0.0; i < w; i += 8 {
		block(p, x+i, y-4, 2, h+8, palette.WoodBase)
		block(p, x+i+1, y-3, 1, h+6, palette.WoodLight)
		block(p, x+i, y-4, 1, 1, palette.WoodLight)
	}
}

func paintShed(p Painter, x, y, w, h float64) {
	block(p, x, y, w, h, palette.FireAmber)
	block(p, x+1, y+1, w-2, h-2, palette.Gold)

	// Roof
	block(p, x-2, y-4, w+4, 4, palette.WoodBase)
	block(p, x-1, y-3, w+2, 2, palette.WoodLight)
	block(p, x, y-4, w, 1, palette.WoodLight)

	// Door
	block(p, x+6, y+4, 4, 8, palette.WoodDark)
	block(p, x+8, y+7, 1, 1, palette.Gold)
	block(p, x+7, y+5, 2, 6, palette.WoodBase)
}
