package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/backyard/internal/palette"
)

func TestEmitRanges(t *testing.T) {
	s := NewParticleSystem(rand.New(rand.NewSource(7)), 10000, 0.1)
	for i := 0; i < 2000; i++ {
		s.Emit(10, 20, Spark, palette.Gold)
	}

	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		if p.X != 10 || p.Y != 20 {
			t.Fatalf("Expected spawn at (10,20), got (%v,%v)", p.X, p.Y)
		}
		if p.VX < -1 || p.VX >= 1 {
			t.Fatalf("VX %v out of [-1,1)", p.VX)
		}
		if p.VY < -1.5 || p.VY >= -0.5 {
			t.Fatalf("VY %v out of [-1.5,-0.5)", p.VY)
		}
		if p.Life < 30 || p.Life >= 60 || p.MaxLife < 30 || p.MaxLife >= 60 {
			t.Fatalf("Lifetimes %v/%v out of [30,60)", p.Life, p.MaxLife)
		}
		if p.Size < 1 || p.Size >= 3 {
			t.Fatalf("Size %v out of [1,3)", p.Size)
		}
	}
}

func TestEmitDrawOrder(t *testing.T) {
	rng := &seqRand{vals: []float64{0.75, 0.25, 0.5, 0.0, 0.5}}
	s := NewParticleSystem(rng, 8, 0.1)
	s.Emit(0, 0, Smoke, palette.SmokeGray)

	p := s.At(0)
	checks := []struct {
		name      string
		got, want float64
	}{
		{"VX", p.VX, 0.5},
		{"VY", p.VY, -1.25},
		{"Life", p.Life, 45},
		{"MaxLife", p.MaxLife, 30},
		{"Size", p.Size, 2},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
	if p.Kind != Smoke || p.Color != palette.SmokeGray {
		t.Errorf("Unexpected kind/color %v %v", p.Kind, p.Color)
	}
}

func TestUpdateIntegratesAndExpires(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 8, 0.1)
	s.Spawn(Particle{X: 0, Y: 0, VX: 1, VY: -1, Life: 3, MaxLife: 3, Size: 1})

	s.Update()
	p := s.At(0)
	if p.X != 1 || p.Y != -1 {
		t.Errorf("Expected position (1,-1), got (%v,%v)", p.X, p.Y)
	}
	if math.Abs(p.VY-(-0.9)) > 1e-9 {
		t.Errorf("Expected VY -0.9 after gravity, got %v", p.VY)
	}
	if p.Life != 2 {
		t.Errorf("Expected life 2, got %v", p.Life)
	}

	s.Update()
	if s.Len() != 1 || s.At(0).Life != 1 {
		t.Fatalf("Expected one particle with life 1")
	}

	s.Update()
	if s.Len() != 0 {
		t.Errorf("Expected particle removed on the tick life reached 0, got %d live", s.Len())
	}
}

func TestUpdateLifetimeStrictlyDecreases(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 8, 0.1)
	s.Spawn(Particle{Life: 4.5, MaxLife: 40})

	prev := s.At(0).Life
	ticks := 0
	for s.Len() > 0 {
		s.Update()
		ticks++
		if s.Len() > 0 {
			cur := s.At(0).Life
			if cur != prev-1 {
				t.Fatalf("Expected life %v, got %v", prev-1, cur)
			}
			prev = cur
		}
	}
	if ticks != 5 {
		t.Errorf("Expected removal on tick 5 (life 4.5 -> -0.5), got %d", ticks)
	}
}

func TestUpdateKeepsOrder(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 8, 0)
	s.Spawn(Particle{X: 1, Life: 5})
	s.Spawn(Particle{X: 2, Life: 1})
	s.Spawn(Particle{X: 3, Life: 5})

	s.Update()
	if s.Len() != 2 {
		t.Fatalf("Expected 2 survivors, got %d", s.Len())
	}
	if s.At(0).X != 1 || s.At(1).X != 3 {
		t.Errorf("Expected survivors in spawn order, got %v then %v", s.At(0).X, s.At(1).X)
	}
}

func TestUpdateEmpty(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 8, 0.1)
	s.Update()
	if s.Len() != 0 {
		t.Errorf("Expected empty system to stay empty")
	}
}

func TestCapEvictsOldest(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 3, 0.1)
	for i := 0; i < 5; i++ {
		s.Spawn(Particle{X: float64(i), Life: 10})
	}

	if s.Len() != 3 {
		t.Fatalf("Expected cap of 3, got %d", s.Len())
	}
	for i, want := range []float64{2, 3, 4} {
		if got := s.At(i).X; got != want {
			t.Errorf("Slot %d: expected particle %v, got %v", i, want, got)
		}
	}
	if s.Evicted() != 2 {
		t.Errorf("Expected 2 evictions, got %d", s.Evicted())
	}
}

func TestFade(t *testing.T) {
	tests := []struct {
		name          string
		life, maxLife float64
		want          float64
	}{
		{"Half", 20, 40, 0.5},
		{"Life above max clamps", 55, 31, 1},
		{"Expired", -1, 40, 0},
		{"No max", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Particle{Life: tt.life, MaxLife: tt.maxLife}
			if got := p.Fade(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAppendViews(t *testing.T) {
	s := NewParticleSystem(constRand(0.5), 8, 0.1)
	s.Spawn(Particle{X: 4, Y: 5, Size: 2, Life: 10, MaxLife: 40, Kind: Smoke, Color: palette.SmokeGray})

	views := s.AppendViews(nil)
	if len(views) != 1 {
		t.Fatalf("Expected 1 view, got %d", len(views))
	}
	v := views[0]
	if v.X != 4 || v.Y != 5 || v.Size != 2 || v.Fade != 0.25 || v.Kind != Smoke || v.Color != palette.SmokeGray {
		t.Errorf("Unexpected view %+v", v)
	}

	views = s.AppendViews(views[:0])
	if len(views) != 1 {
		t.Errorf("Expected reused buffer to hold 1 view, got %d", len(views))
	}
}
