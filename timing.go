/*
Copyright 2024 Tim St. Pierre
Timing contract of the HD44780 4-bit interface
*/
package lcm1602

import "time"

const (
	// PowerOnDelay is the wait after power-up before the first command.
	PowerOnDelay = 80 * time.Millisecond
	// HandshakeDelay follows the first two 8-bit function set writes.
	HandshakeDelay = 5 * time.Millisecond
	// ExecDelay follows clear and return home, which touch all of DDRAM.
	ExecDelay = 2 * time.Millisecond
	// BacklightSettle follows the first expander write during init.
	BacklightSettle = 1 * time.Millisecond
)

// Timing describes how a nibble is strobed into the controller.
//
// Pick one profile per bus and stick with it; the two are not meant to be
// mixed on the same display.
type Timing struct {
	Name string
	// Frames is the number of expander writes per nibble: 3 presents the
	// data with EN low before strobing, 2 strobes directly.
	Frames int
	// StrobeHold is the wait between the EN high and the EN low frame.
	StrobeHold time.Duration
	// NibbleSettle is the wait after every nibble.
	NibbleSettle time.Duration
}

var (
	TimingModern = Timing{
		Name:         "modern",
		Frames:       3,
		NibbleSettle: 700 * time.Microsecond,
	}
	TimingLegacy = Timing{
		Name:         "legacy",
		Frames:       2,
		StrobeHold:   1 * time.Millisecond,
		NibbleSettle: 5 * time.Millisecond,
	}
)

// TimingByName returns the profile called name ("modern" or "legacy").
// An empty name selects TimingModern.
func TimingByName(name string) (Timing, bool) {
	switch name {
	case "", TimingModern.Name:
		return TimingModern, true
	case TimingLegacy.Name:
		return TimingLegacy, true
	}
	return Timing{}, false
}
