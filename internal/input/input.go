package input

import (
	"bufio"
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so a key stays down until auto-repeat stops
// refreshing it; the window has to bridge the repeat delay of common terminals.
const keyHoldDuration = 120 * time.Millisecond

// Key is a logical key the yard reacts to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyInteract
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{"up", "down", "left", "right", "interact", "quit"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Input represents the current frame's input state.
// The zero value has every key released.
type Input struct {
	keys    [keyCount]bool
	Pressed []byte // Raw bytes received this frame (terminal hosts only)
}

// Set records the pressed state of k. Unknown keys are ignored.
func (in *Input) Set(k Key, pressed bool) {
	if k < 0 || k >= keyCount {
		return
	}
	in.keys[k] = pressed
}

// IsPressed reports whether k is held.
func (in Input) IsPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.keys[k]
}

// Up, Down, Left, Right, Interact and Quit are shorthands for IsPressed.
func (in Input) Up() bool       { return in.keys[KeyUp] }
func (in Input) Down() bool     { return in.keys[KeyDown] }
func (in Input) Left() bool     { return in.keys[KeyLeft] }
func (in Input) Right() bool    { return in.keys[KeyRight] }
func (in Input) Interact() bool { return in.keys[KeyInteract] }
func (in Input) Quit() bool     { return in.keys[KeyQuit] }

// AnyDirection reports whether a movement key is held.
func (in Input) AnyDirection() bool {
	return in.keys[KeyUp] || in.keys[KeyDown] || in.keys[KeyLeft] || in.keys[KeyRight]
}

// Of builds an Input with the given keys held.
func Of(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		in.Set(k, true)
	}
	return in
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	lastSeen [keyCount]time.Time
	now      func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (EOF or a cancelled reader).
func StartStream(r io.Reader) *Stream {
	s := newStream(time.Now)
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(now func() time.Time) *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: now,
	}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
// A closed stream reports Quit so hosts stop when their reader goes away.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)

	in := Input{Pressed: buf}
	for k := Key(0); k < keyCount; k++ {
		seen := s.lastSeen[k]
		in.keys[k] = !seen.IsZero() && now.Sub(seen) < keyHoldDuration
	}
	if closed {
		in.keys[KeyQuit] = true
	}
	return in
}

// ResetKeyInput forgets every held key.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.lastSeen = [keyCount]time.Time{}
}

// apply parses the collected bytes and updates key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if k, ok := arrowKey(buf[i+2]); ok {
				s.lastSeen[k] = now
				i += 2
				continue
			}
		}

		if k, ok := byteKey(b); ok {
			s.lastSeen[k] = now
		}
	}
}

func arrowKey(code byte) (Key, bool) {
	switch code {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	}
	return 0, false
}

func byteKey(b byte) (Key, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	case 'a', 'A', 'j', 'J':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'w', 'W', 'i', 'I':
		return KeyUp, true
	case 's', 'S', 'k', 'K':
		return KeyDown, true
	case ' ', 'e', 'E':
		return KeyInteract, true
	}
	return 0, false
}
