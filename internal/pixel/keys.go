package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/backyard/internal/input"
)

// KeyFunc reports whether a physical key is held.
type KeyFunc func(ebiten.Key) bool

// keyBindings maps each logical key to the physical keys that trigger it.
var keyBindings = [...]struct {
	key  input.Key
	keys []ebiten.Key
}{
	{input.KeyUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyI}},
	{input.KeyDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown, ebiten.KeyK}},
	{input.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyJ}},
	{input.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight, ebiten.KeyL}},
	{input.KeyInteract, []ebiten.Key{ebiten.KeySpace, ebiten.KeyE}},
	{input.KeyQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// readInput samples the held keys. Unlike terminals, windows report real
// key-up events, so no hold window is needed.
func readInput(pressed KeyFunc) input.Input {
	var in input.Input
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if pressed(k) {
				in.Set(b.key, true)
				break
			}
		}
	}
	return in
}
