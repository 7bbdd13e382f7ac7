package scene

import "github.com/tomz197/backyard/internal/palette"

const (
	fenceThickness = 12
	cornerSize     = 16
)

func paintBackground(p Painter, width, height float64) {
	block(p, 0, 0, width, height, palette.GrassBase)

	// Checkered light tufts
	for y := 0.0; y < height; y += 8 {
		for x := 0.0; x < width; x += 16 {
			if int(x+y)%32 == 0 {
				block(p, x, y, 8, 8, palette.GrassLight)
			}
		}
	}

	w, h := int(width), int(height)
	for i := 0; i < 150; i++ {
		x := float64((i*73 + 17) % w)
		y := float64((i*41 + 23) % h)
		block(p, x, y, 2, 2, palette.GrassDark)
		block(p, x+1, y+2, 2, 2, palette.GrassDark)
		if i%3 == 0 {
			block(p, x+2, y+1, 1, 3, palette.GrassDark)
		}
	}

	paintDirt(p, 150, 200, 32, 16)
	paintDirt(p, 480, 300, 24, 20)

	for i := 0; i < 20; i++ {
		x := float64((i*61 + 31) % (w - 20))
		y := float64((i*37 + 47) % (h - 20))
		c := palette.Flowers[i%len(palette.Flowers)]
		block(p, x, y, 2, 2, c)
		block(p, x+2, y+1, 2, 2, c)
		block(p, x+1, y-1, 2, 2, c)
		block(p, x-1, y+1, 2, 2, c)
		block(p, x+1, y+1, 1, 1, palette.Gold)
		block(p, x+1, y+2, 2, 4, palette.GrassLight)
	}

	paintFence(p, width, height)
}

func paintDirt(p Painter, x, y, w, h float64) {
	block(p, x, y, w, h, palette.DirtBase)
	block(p, x+2, y+2, w-4, h-4, palette.DirtLight)
	block(p, x+4, y+4, w-8, h-8, palette.DirtSand)
}

// paintFence draws the border the player cannot cross, with posts and
// golden corner caps.
func paintFence(p Painter, width, height float64) {
	const f = fenceThickness

	plank := func(x, y, w, h float64) {
		block(p, x, y, w, h, palette.WoodBase)
		block(p, x+2, y+2, w-4, h-4, palette.WoodLight)
		block(p, x+4, y+4, w-8, h-8, palette.WoodBase)
	}
	plank(0, 0, width, f)
	plank(0, height-f, width, f)
	plank(0, 0, f, height)
	plank(width-f, 0, f, height)

	for x := 32.0; x < width-32; x += 64 {
		block(p, x, 0, 6, f+4, palette.WoodDark)
		block(p, x+1, 1, 4, f+2, palette.WoodBase)
		block(p, x, height-f-4, 6, f+4, palette.WoodDark)
		block(p, x+1, height-f-3, 4, f+2, palette.WoodBase)
	}
	for y := 32.0; y < height-32; y += 64 {
		block(p, 0, y, f+4, 6, palette.WoodDark)
		block(p, 1, y+1, f+2, 4, palette.WoodBase)
		block(p, width-f-4, y, f+4, 6, palette.WoodDark)
		block(p, width-f-3, y+1, f+2, 4, palette.WoodBase)
	}

	corner := func(x, y float64) {
		block(p, x, y, cornerSize, cornerSize, palette.FireAmber)
		block(p, x+2, y+2, cornerSize-4, cornerSize-4, palette.Gold)
		block(p, x+4, y+4, cornerSize-8, cornerSize-8, palette.Orange)
	}
	corner(f, f)
	corner(width-f-cornerSize, f)
	corner(f, height-f-cornerSize)
	corner(width-f-cornerSize, height-f-cornerSize)
}
