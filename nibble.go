/*
Copyright 2024 Tim St. Pierre
Nibble framing for the PCF8574 backpack
*/
package lcm1602

import "context"

const (
	// Pins
	EN        = 2
	WR        = 1
	RS        = 0
	D4        = 4
	D5        = 5
	D6        = 6
	D7        = 7
	BACKLIGHT = 3
)

// frame builds one expander byte carrying the low 4 bits of nibble.
// WR is never set: the driver only writes.
func frame(nibble byte, rs, backlight, enable bool) byte {
	var data byte
	data = pinInterpret(D4, data, nibble&0x01 == 0x01)
	data = pinInterpret(D5, data, (nibble>>1)&0x01 == 0x01)
	data = pinInterpret(D6, data, (nibble>>2)&0x01 == 0x01)
	data = pinInterpret(D7, data, (nibble>>3)&0x01 == 0x01)
	data = pinInterpret(RS, data, rs)
	data = pinInterpret(BACKLIGHT, data, backlight)
	data = pinInterpret(EN, data, enable)
	return data
}

// backlightFrame is the only write that is not part of a nibble: all lines
// low except the backlight.
func backlightFrame(on bool) byte {
	return pinInterpret(BACKLIGHT, 0x00, on)
}

// NibbleFrames returns the expander writes latching the high nibble of
// data. The controller latches on the falling edge of EN, so the data and
// RS lines stay asserted on the closing frame.
func NibbleFrames(data byte, rs, backlight bool, t Timing) []byte {
	nibble := data >> 4
	strobe := []byte{
		frame(nibble, rs, backlight, true),
		frame(nibble, rs, backlight, false),
	}
	if t.Frames < 3 {
		return strobe
	}
	return append([]byte{frame(nibble, rs, backlight, false)}, strobe...)
}

// Frames returns the expander writes for a full byte, high nibble first.
func Frames(data byte, rs, backlight bool, t Timing) []byte {
	return append(NibbleFrames(data&0xf0, rs, backlight, t), NibbleFrames(data<<4, rs, backlight, t)...)
}

func (d *Dev) writeFrame(ctx context.Context, f byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.log.Tracef("frame %08b", f)
	d.buf[0] = f
	return d.c.Tx(d.buf[:], nil)
}

// sendNibble strobes the high nibble of data. Bus errors are returned as is;
// the controller may then hold a partial byte.
func (d *Dev) sendNibble(ctx context.Context, data byte, rs bool) error {
	t := d.opts.timing()
	for _, f := range NibbleFrames(data, rs, d.backlight, t) {
		if err := d.writeFrame(ctx, f); err != nil {
			return err
		}
		if f&(1<<EN) != 0 && t.StrobeHold > 0 {
			if err := d.clk.Sleep(ctx, t.StrobeHold); err != nil {
				return err
			}
		}
	}
	return d.clk.Sleep(ctx, t.NibbleSettle)
}

func (d *Dev) sendByte(ctx context.Context, data byte, rs bool) error {
	if err := d.sendNibble(ctx, data&0xf0, rs); err != nil {
		return err
	}
	return d.sendNibble(ctx, data<<4, rs)
}

func (d *Dev) command(ctx context.Context, cmd byte) error {
	d.log.Debugf("command %#02x", cmd)
	if err := d.sendByte(ctx, cmd, false); err != nil {
		return err
	}
	if NeedsExecDelay(cmd) {
		return d.clk.Sleep(ctx, ExecDelay)
	}
	return nil
}

func pinInterpret(pin, data byte, value bool) byte {
	var mask byte = 0x01 << pin
	if value {
		return data | mask
	}
	return data &^ mask
}
