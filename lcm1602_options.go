/*
Copyright 2024 Tim St. Pierre
Options for lcm1602 character display
*/
package lcm1602

import (
	"errors"
	"time"
)

// Opts configures a display. The zero value is a one line display at the
// default address with the backlight on and the cursor hidden.
type Opts struct {
	// The I²C slave address; 0 selects 0x27
	I2CAddr uint16
	// Visible size, also selects the row address table
	Geometry Geometry
	// Initial cursor flags
	Cursor bool
	Blink  bool
	Font   Font
	// Start with the backlight off
	BacklightOff bool
	// Nibble strobe profile; the zero value selects TimingModern
	Timing Timing
	// Extra wait after each character written
	CharDelay time.Duration
}

var DefaultOpts = Opts{
	I2CAddr:  0x27,
	Geometry: Geometry2x16,
	Timing:   TimingModern,
}

func (o Opts) WithAddress(addr uint16) Opts {
	o.I2CAddr = addr
	return o
}

func (o Opts) WithGeometry(g Geometry) Opts {
	o.Geometry = g
	return o
}

// WithRows keeps the columns and changes the row count; 0 selects the one
// line function set.
func (o Opts) WithRows(rows uint8) Opts {
	o.Geometry.Rows = rows
	return o
}

func (o Opts) WithCursor(on bool) Opts {
	o.Cursor = on
	return o
}

func (o Opts) WithBlink(on bool) Opts {
	o.Blink = on
	return o
}

func (o Opts) WithFont(f Font) Opts {
	o.Font = f
	return o
}

func (o Opts) WithBacklight(on bool) Opts {
	o.BacklightOff = !on
	return o
}

func (o Opts) WithTiming(t Timing) Opts {
	o.Timing = t
	return o
}

func (o *Opts) i2cAddr() (uint16, error) {
	switch o.I2CAddr {
	case 0:
		// Default address.
		return 0x27, nil
	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27:
		// PCF8574
		return o.I2CAddr, nil
	case 0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f:
		// PCF8574A
		return o.I2CAddr, nil
	default:
		return 0, errors.New("given address not supported by device")
	}
}

func (o *Opts) timing() Timing {
	if o.Timing.Frames == 0 {
		return TimingModern
	}
	return o.Timing
}
