package input

import (
	"strings"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func feed(s *Stream, data string) {
	for i := 0; i < len(data); i++ {
		s.ch <- data[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  []Key
	}{
		{"WASD up", "w", []Key{KeyUp}},
		{"Vim-ish right", "l", []Key{KeyRight}},
		{"Arrow down", "\x1b[B", []Key{KeyDown}},
		{"Arrow left", "\x1b[D", []Key{KeyLeft}},
		{"Space interacts", " ", []Key{KeyInteract}},
		{"E interacts", "e", []Key{KeyInteract}},
		{"Diagonal combo", "wd", []Key{KeyUp, KeyRight}},
		{"Quit", "q", []Key{KeyQuit}},
		{"Unknown byte", "z", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(100, 0)}
			s := newStream(clock.now)
			feed(s, tt.bytes)

			in := ReadInput(s)
			want := map[Key]bool{}
			for _, k := range tt.want {
				want[k] = true
			}
			for k := Key(0); k < keyCount; k++ {
				if in.IsPressed(k) != want[k] {
					t.Errorf("Key %s: expected %v, got %v", k, want[k], in.IsPressed(k))
				}
			}
			if string(in.Pressed) != tt.bytes {
				t.Errorf("Expected raw bytes %q, got %q", tt.bytes, in.Pressed)
			}
		})
	}
}

func TestReadInputHoldWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)
	feed(s, "a")

	if !ReadInput(s).Left() {
		t.Fatal("Expected left to be held on the press frame")
	}

	clock.t = clock.t.Add(keyHoldDuration / 2)
	if !ReadInput(s).Left() {
		t.Error("Expected left to still be held inside the hold window")
	}

	clock.t = clock.t.Add(keyHoldDuration)
	if ReadInput(s).Left() {
		t.Error("Expected left to be released after the hold window")
	}
}

func TestResetKeyInput(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newStream(clock.now)
	feed(s, "wd")
	ReadInput(s)

	ResetKeyInput(s)
	if ReadInput(s).AnyDirection() {
		t.Error("Expected no held keys after reset")
	}
	ResetKeyInput(nil)
}

func TestStartStreamClosedReportsQuit(t *testing.T) {
	s := StartStream(strings.NewReader("d"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		if in.Quit() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Expected quit once the reader hit EOF")
}

func TestInputSetAndOf(t *testing.T) {
	in := Of(KeyUp, KeyInteract)
	if !in.Up() || !in.Interact() || in.Down() {
		t.Errorf("Unexpected key state %+v", in)
	}
	in.Set(KeyUp, false)
	if in.Up() {
		t.Error("Expected up to be released")
	}
	in.Set(Key(99), true)
	if in.IsPressed(Key(99)) {
		t.Error("Expected unknown keys to be ignored")
	}
	if Key(99).String() != "unknown" || KeyInteract.String() != "interact" {
		t.Error("Unexpected key names")
	}
}
