/*
Copyright 2024 Tim St. Pierre
Power-on handshake
*/
package lcm1602

import "context"

// Init runs the power-on handshake and applies the configured function
// set and cursor flags. It may be called again at any time to recover a
// display left in an unknown state.
func (d *Dev) Init() error {
	return d.InitContext(context.Background())
}

// InitContext is Init with a cancellable context. A failed or cancelled
// init leaves the display unusable until the next successful one.
func (d *Dev) InitContext(ctx context.Context) error {
	d.ready = false
	d.log.Debug("initializing")
	if err := d.handshake(ctx); err != nil {
		d.log.WithError(err).Warn("init failed")
		return err
	}
	d.ready = true
	d.log.Infof("ready, %s font %s", d.opts.Geometry, d.font)
	return nil
}

func (d *Dev) handshake(ctx context.Context) error {
	if err := d.clk.Sleep(ctx, PowerOnDelay); err != nil {
		return err
	}

	// The expander powers up with every line high, EN included.
	if err := d.writeFrame(ctx, backlightFrame(d.backlight)); err != nil {
		return err
	}
	if err := d.clk.Sleep(ctx, BacklightSettle); err != nil {
		return err
	}

	// Whatever mode the controller woke up in, three 8-bit function sets
	// bring it to 8-bit mode; only then is the switch to 4-bit reliable.
	mode8 := HandshakeNibble(true)
	for i := 0; i < 3; i++ {
		if err := d.sendNibble(ctx, mode8, false); err != nil {
			return err
		}
		if i < 2 {
			if err := d.clk.Sleep(ctx, HandshakeDelay); err != nil {
				return err
			}
		}
	}
	if err := d.sendNibble(ctx, HandshakeNibble(false), false); err != nil {
		return err
	}

	// 4-bit from here on.
	for _, cmd := range []byte{
		FunctionSet(d.font, d.opts.Geometry.Rows),
		DisplayControl(d.cursor, d.blink),
		ClearCommand(),
		EntryMode(),
		HomeCommand(),
	} {
		if err := d.command(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}
