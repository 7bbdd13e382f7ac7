package client

import (
	"time"

	"github.com/tomz197/backyard/internal/input"
)

// ClientState holds per-connection state the HUD reads.
// Each client has its own instance, managed by the Client.
type ClientState struct {
	Input       input.Input
	Day         int       // Mirrors the yard's day counter
	Banner      string    // Activity message currently shown, "" when hidden
	Running     bool      // Client loop running
	lastInput   time.Time // Last time any byte arrived
	isInactive  bool      // Whether the inactivity warning is showing
	wasInactive bool      // isInactive as of the previous frame
	needsClear  bool      // Clear the terminal before the next frame
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Running:    true,
		lastInput:  now,
		needsClear: true,
	}
}

// ShowActivity implements loop.ActivitySink.
func (s *ClientState) ShowActivity(msg string) {
	s.Banner = msg
}

// HideActivity implements loop.ActivitySink.
func (s *ClientState) HideActivity() {
	s.Banner = ""
}
