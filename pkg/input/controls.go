// Package input tracks the held state of the seven craft controls. It is
// an edge-triggered latch over discrete key transition events: flags mean
// "currently held", not "just pressed".
package input

// Key identifies one of the recognized controls.
type Key int

const (
	KeyYawLeft Key = iota
	KeyYawRight
	KeyTransLeft
	KeyTransRight
	KeyTransForward
	KeyTransBack
	KeyGrab
)

// KeyEvent is a single key transition delivered by the host's event
// layer. Repeat marks auto-repeat key-down events, which carry no new
// information and are ignored.
type KeyEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

// Controls holds the current state of every recognized control.
type Controls struct {
	YawLeft      bool
	YawRight     bool
	TransLeft    bool
	TransRight   bool
	TransForward bool
	TransBack    bool
	Grab         bool
}

// HandleEvent applies a key transition and reports whether the event was
// recognized. Auto-repeat events and unknown keys are left unhandled.
func (c *Controls) HandleEvent(ev KeyEvent) bool {
	if ev.Repeat {
		return false
	}
	switch ev.Key {
	case KeyYawLeft:
		c.YawLeft = ev.Down
	case KeyYawRight:
		c.YawRight = ev.Down
	case KeyTransLeft:
		c.TransLeft = ev.Down
	case KeyTransRight:
		c.TransRight = ev.Down
	case KeyTransForward:
		c.TransForward = ev.Down
	case KeyTransBack:
		c.TransBack = ev.Down
	case KeyGrab:
		c.Grab = ev.Down
	default:
		return false
	}
	return true
}

// ThrusterCount returns how many of the six directional controls are
// held. Grab is not a thruster and burns no fuel.
func (c Controls) ThrusterCount() int {
	count := 0
	for _, held := range []bool{
		c.YawLeft, c.YawRight,
		c.TransLeft, c.TransRight, c.TransForward, c.TransBack,
	} {
		if held {
			count++
		}
	}
	return count
}
