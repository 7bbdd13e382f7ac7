package main

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"alice", "alice"},
		{"averyveryverylongusername", "averyveryverylon"},
		{"žluťoučkýkůňúpělďábelskéódy", "žluťoučkýkůňúpěl"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, maxUsernameLength); got != tt.want {
			t.Errorf("truncate(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Errorf("Expected 120x40, got %dx%d (%v)", w, h, err)
	}
}

func TestSessionGroupRefusesAfterClose(t *testing.T) {
	g := &sessionGroup{}
	if !g.add() {
		t.Fatal("Expected add to succeed while open")
	}

	g.close()
	if g.add() {
		t.Error("Expected add to fail after close")
	}

	waited := make(chan struct{})
	go func() {
		g.wait()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("Expected wait to block on the running session")
	case <-time.After(20 * time.Millisecond):
	}

	g.done()
	select {
	case <-waited:
	case <-time.After(time.Second):
		t.Error("Expected wait to return once the session is done")
	}
}
