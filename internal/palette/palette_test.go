package palette

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	got := Hex("#FFD700")
	want := color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestHexPanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for malformed color")
		}
	}()
	Hex("gold")
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  color.RGBA
	}{
		{"Transparent keeps destination", 0, Black},
		{"Opaque yields source", 1, White},
		{"Over-opaque clamps", 3, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(Black, White, tt.alpha); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	mid := Blend(Black, White, 0.5)
	if mid.R < 120 || mid.R > 135 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("Expected mid gray, got %v", mid)
	}
}
