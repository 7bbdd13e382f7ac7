package loop

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/backyard/internal/loop/config"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// recordingSink remembers every activity transition.
type recordingSink struct {
	shown  []string
	hidden int
}

func (s *recordingSink) ShowActivity(msg string) { s.shown = append(s.shown, msg) }
func (s *recordingSink) HideActivity()           { s.hidden++ }

func newTestYard(t *testing.T, sink ActivitySink) *Yard {
	t.Helper()
	y, err := NewYard(config.Default(), Options{
		Rand:   constRand(0.5),
		Sink:   sink,
		Logger: log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewYard: %v", err)
	}
	return y
}
