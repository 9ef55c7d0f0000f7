/*
Copyright 2024 Tim St. Pierre
Controls an HD44780 character LCD using an I2C backpack
Thanks to Dave Cheney for figuring out the registers!
*/
package lcm1602

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// ErrNotReady is returned by display operations until Init succeeds, and
// again after any operation failed halfway through.
var ErrNotReady = errors.New("lcm1602: display not initialized")

// Dev is an HD44780 behind a PCF8574 expander.
//
// A Dev owns its bus connection. It is not safe for concurrent use.
type Dev struct {
	c         conn.Conn
	clk       Sleeper
	log       *log.Entry
	opts      Opts
	backlight bool
	cursor    bool
	blink     bool
	font      Font
	ready     bool
	buf       [1]byte
}

func (d *Dev) String() string {
	return fmt.Sprintf("lcm1602{%s}", d.c)
}

// NewI2C returns a new initialized device that communicates over I²C.
//
// Use default options if nil is used.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	d, err := New(b, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// New returns a device that has not talked to the display yet; call Init
// before anything else.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr, err := opts.i2cAddr()
	if err != nil {
		return nil, fmt.Errorf("lcm1602 %#x: %v", opts.I2CAddr, err)
	}
	return makeDev(&i2c.Dev{Bus: b, Addr: addr}, opts, clockSleeper{}), nil
}

func makeDev(c conn.Conn, opts *Opts, clk Sleeper) *Dev {
	return &Dev{
		c:         c,
		clk:       clk,
		log:       log.WithFields(log.Fields{"dev": "lcm1602", "conn": c.String()}),
		opts:      *opts,
		backlight: !opts.BacklightOff,
		cursor:    opts.Cursor,
		blink:     opts.Blink,
		font:      opts.Font,
	}
}

// Ready reports whether the last Init succeeded and nothing failed since.
func (d *Dev) Ready() bool {
	return d.ready
}

// Geometry returns the configured display size.
func (d *Dev) Geometry() Geometry {
	return d.opts.Geometry
}

// Halt clears the screen and turns off the backlight.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.SetBacklight(false)
}

// Clear blanks the display and moves the cursor to (0, 0).
func (d *Dev) Clear() error {
	return d.ClearContext(context.Background())
}

// Home moves the cursor to (0, 0) and undoes any display scroll.
func (d *Dev) Home() error {
	return d.HomeContext(context.Background())
}

// SetCursor moves the cursor to a zero based row and column.
func (d *Dev) SetCursor(row, col uint8) error {
	return d.SetCursorContext(context.Background(), row, col)
}

// SetBacklight switches the backlight. The new state is also carried by
// every later write.
func (d *Dev) SetBacklight(on bool) error {
	return d.SetBacklightContext(context.Background(), on)
}

func (d *Dev) SetCursorVisible(on bool) error {
	return d.SetCursorVisibleContext(context.Background(), on)
}

func (d *Dev) SetCursorBlink(on bool) error {
	return d.SetCursorBlinkContext(context.Background(), on)
}

func (d *Dev) SetFont(f Font) error {
	return d.SetFontContext(context.Background(), f)
}

func (d *Dev) ScrollDisplayLeft() error {
	return d.ScrollDisplayLeftContext(context.Background())
}

func (d *Dev) ScrollDisplayRight() error {
	return d.ScrollDisplayRightContext(context.Background())
}

func (d *Dev) ScrollCursorLeft() error {
	return d.ScrollCursorLeftContext(context.Background())
}

func (d *Dev) ScrollCursorRight() error {
	return d.ScrollCursorRightContext(context.Background())
}

// check guards an operation and marks the display unusable if it failed.
func (d *Dev) check(err error) error {
	if err != nil && err != ErrNotReady {
		d.ready = false
		d.log.WithError(err).Warn("write failed, display needs Init")
	}
	return err
}

var _ conn.Resource = &Dev{}
