package loop

import (
	"testing"

	"github.com/tomz197/backyard/internal/input"
)

func TestCheckInteractions(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float64
		in            input.Input
		wantFired     int
		wantParticles int
		wantMessage   string
	}{
		{"Workbench", 100, 100, input.Of(input.KeyInteract), 1, 2, "Building a chair! +1 furniture point"},
		{"Fire", 495, 145, input.Of(input.KeyInteract), 1, 2, "Sitting by the warm fire... relaxing!"},
		{"No interact key", 100, 100, input.Input{}, 0, 0, ""},
		{"Open grass", 320, 240, input.Of(input.KeyInteract), 0, 0, ""},
		{"Touching edge only", 132, 100, input.Of(input.KeyInteract), 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			y := newTestYard(t, sink)
			y.Player.X, y.Player.Y = tt.x, tt.y

			fired := y.CheckInteractions(tt.in, 1000)
			if fired != tt.wantFired {
				t.Errorf("Expected %d fired, got %d", tt.wantFired, fired)
			}
			if y.Particles.Len() != tt.wantParticles {
				t.Errorf("Expected %d particles, got %d", tt.wantParticles, y.Particles.Len())
			}
			if y.Activity.Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, y.Activity.Message)
			}
			if tt.wantFired > 0 && len(sink.shown) != tt.wantFired {
				t.Errorf("Expected %d sink shows, got %d", tt.wantFired, len(sink.shown))
			}
		})
	}
}

func TestCheckInteractionsSparkPositions(t *testing.T) {
	y := newTestYard(t, nil)
	y.Player.X, y.Player.Y = 100, 100

	y.CheckInteractions(input.Of(input.KeyInteract), 0)

	// Workbench box is (100, 100, 32, 32); constRand(0.5) keeps vx at 0
	first, second := y.Particles.At(0), y.Particles.At(1)
	if first.X != 116 || first.Y != 100 {
		t.Errorf("Expected first spark at (116, 100), got (%v, %v)", first.X, first.Y)
	}
	if second.X != 121 || second.Y != 95 {
		t.Errorf("Expected second spark at (121, 95), got (%v, %v)", second.X, second.Y)
	}
}

func TestCheckInteractionsRepeatsWhileHeld(t *testing.T) {
	y := newTestYard(t, nil)
	y.Player.X, y.Player.Y = 100, 100

	for i := 0; i < 3; i++ {
		y.CheckInteractions(input.Of(input.KeyInteract), float64(i*16))
	}
	if y.Particles.Len() != 6 {
		t.Errorf("Expected 6 particles after 3 held ticks, got %d", y.Particles.Len())
	}
}
