package loop

import "github.com/tomz197/backyard/internal/object"

// PlayerView is the player pose a renderer needs.
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	Facing        object.Facing
	Moving        bool
	WalkCycle     int
	IdleTimer     int
	Frame         int
}

// PropView is a prop's placement and current animation frame.
type PropView struct {
	Kind  object.PropKind
	Box   object.Rect
	Frame int
}

// ActivityView is the activity banner state.
type ActivityView struct {
	Message string
	Visible bool
}

// View is everything that crosses from the simulation to a renderer each
// frame. Renderers must treat it as read-only and must not retain it past
// Render; its slices are reused by the next frame.
type View struct {
	Now       float64 // Frame timestamp in ms
	Day       int
	World     object.Bounds
	Player    PlayerView
	Props     []PropView
	Particles []object.ParticleView
	Activity  ActivityView
}

// BuildView fills v from the yard, reusing v's slices.
func (y *Yard) BuildView(v *View, now float64) {
	p := y.Player
	v.Now = now
	v.Day = y.Days.Day
	v.World = y.Bounds
	v.Player = PlayerView{
		X:         p.X,
		Y:         p.Y,
		Width:     p.Width,
		Height:    p.Height,
		Facing:    p.Facing,
		Moving:    p.Moving,
		WalkCycle: p.WalkCycle,
		IdleTimer: p.IdleTimer,
		Frame:     p.Sprite.Frame,
	}

	v.Props = v.Props[:0]
	for _, prop := range y.Props {
		v.Props = append(v.Props, PropView{Kind: prop.Kind, Box: prop.Box(), Frame: prop.Sprite.Frame})
	}

	v.Particles = y.Particles.AppendViews(v.Particles[:0])
	v.Activity = ActivityView{Message: y.Activity.Message, Visible: y.Activity.Visible}
}
