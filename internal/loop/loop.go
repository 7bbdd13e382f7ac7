// Package loop provides the yard simulation and the per-frame orchestration
// that drives it.
package loop

import (
	"context"
	"time"

	"github.com/tomz197/backyard/internal/input"
)

// Renderer draws a frame. It is the external collaborator the orchestrator
// hands off to once per tick; the simulation itself never draws.
type Renderer interface {
	Render(v *View) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(v *View) error

// Render calls f(v).
func (f RendererFunc) Render(v *View) error {
	return f(v)
}

// Orchestrator runs the fixed update sequence for one yard:
// time -> player -> interactions -> particles -> props -> activity expiry -> render.
type Orchestrator struct {
	yard     *Yard
	renderer Renderer
	view     View
	prev     float64
	started  bool
}

// NewOrchestrator creates an orchestrator in the uninitialized state.
// renderer may be nil for headless runs.
func NewOrchestrator(y *Yard, r Renderer) *Orchestrator {
	return &Orchestrator{yard: y, renderer: r}
}

// Yard returns the driven simulation.
func (o *Orchestrator) Yard() *Yard {
	return o.yard
}

// Started reports whether the first frame has run.
func (o *Orchestrator) Started() bool {
	return o.started
}

// Frame runs one tick at timestamp now (ms, non-decreasing). The first call
// only seeds the previous timestamp, so it advances the clock by zero.
func (o *Orchestrator) Frame(now float64, in input.Input) error {
	if !o.started {
		o.prev = now
		o.started = true
	}
	delta := now - o.prev
	o.prev = now

	y := o.yard
	y.UpdateTime(delta)
	y.UpdatePlayer(in)
	y.CheckInteractions(in, now)
	y.UpdateParticles()
	y.UpdateProps(now)
	y.Activity.Expire(now)

	if o.renderer == nil {
		return nil
	}
	y.BuildView(&o.view, now)
	return o.renderer.Render(&o.view)
}

// InputFunc samples the input for the next frame.
type InputFunc func() input.Input

// Run schedules frames every frameTime until ctx is cancelled, the sampled
// input asks to quit, or a frame fails. Timestamps are ms since Run started.
func Run(ctx context.Context, o *Orchestrator, frameTime time.Duration, poll InputFunc) error {
	start := time.Now()
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		in := poll()
		if in.Quit() {
			return nil
		}

		now := float64(time.Since(start)) / float64(time.Millisecond)
		if err := o.Frame(now, in); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
