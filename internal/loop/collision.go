package loop

import (
	"github.com/tomz197/backyard/internal/object"
	"github.com/tomz197/backyard/internal/palette"
	"github.com/tomz197/backyard/internal/physics"
)

// CheckInteractions fires every prop the player overlaps while interact is
// held. It is level-triggered: holding the key re-fires each tick, with no
// cooldown. Returns the number of props fired.
func (y *Yard) CheckInteractions(in object.Input, now float64) int {
	if !in.Interact() {
		return 0
	}

	pb := y.Player.Box()
	fired := 0
	for _, prop := range y.Props {
		b := prop.Box()
		if !physics.BoxesOverlap(pb.X, pb.Y, pb.W, pb.H, b.X, b.Y, b.W, b.H) {
			continue
		}

		y.Activity.Show(prop.Activity, now)

		// Feedback sparks at the prop's top center
		y.Particles.Emit(b.CenterX(), b.Y, object.Spark, palette.Gold)
		y.Particles.Emit(b.CenterX()+5, b.Y-5, object.Spark, palette.Orange)

		y.logger.Debug("interaction", "prop", prop.Kind, "activity", prop.Activity)
		fired++
	}
	return fired
}
