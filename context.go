/*
Copyright 2024 Tim St. Pierre
Context aware display operations
*/
package lcm1602

import "context"

// The ...Context methods are the same operations as their blocking
// counterparts; waits return early when ctx is done and ctx is checked
// before every bus write. Cancelling mid-operation may leave half a byte in
// the controller, so the display needs Init afterwards.

func (d *Dev) ClearContext(ctx context.Context) error {
	return d.commandContext(ctx, ClearCommand())
}

func (d *Dev) HomeContext(ctx context.Context) error {
	return d.commandContext(ctx, HomeCommand())
}

// SetCursorContext rejects positions outside the configured geometry
// without touching the bus.
func (d *Dev) SetCursorContext(ctx context.Context, row, col uint8) error {
	if err := d.opts.Geometry.check(row, col); err != nil {
		return err
	}
	return d.commandContext(ctx, DDRAMCommand(RowColToAddress(row, col, d.opts.Geometry)))
}

func (d *Dev) SetBacklightContext(ctx context.Context, on bool) error {
	if !d.ready {
		return ErrNotReady
	}
	d.backlight = on
	return d.check(d.writeFrame(ctx, backlightFrame(on)))
}

func (d *Dev) SetCursorVisibleContext(ctx context.Context, on bool) error {
	if !d.ready {
		return ErrNotReady
	}
	d.cursor = on
	return d.commandContext(ctx, DisplayControl(d.cursor, d.blink))
}

func (d *Dev) SetCursorBlinkContext(ctx context.Context, on bool) error {
	if !d.ready {
		return ErrNotReady
	}
	d.blink = on
	return d.commandContext(ctx, DisplayControl(d.cursor, d.blink))
}

func (d *Dev) SetFontContext(ctx context.Context, f Font) error {
	if !d.ready {
		return ErrNotReady
	}
	d.font = f
	return d.commandContext(ctx, FunctionSet(d.font, d.opts.Geometry.Rows))
}

func (d *Dev) ScrollDisplayLeftContext(ctx context.Context) error {
	return d.commandContext(ctx, ShiftCommand(true, false))
}

func (d *Dev) ScrollDisplayRightContext(ctx context.Context) error {
	return d.commandContext(ctx, ShiftCommand(true, true))
}

func (d *Dev) ScrollCursorLeftContext(ctx context.Context) error {
	return d.commandContext(ctx, ShiftCommand(false, false))
}

func (d *Dev) ScrollCursorRightContext(ctx context.Context) error {
	return d.commandContext(ctx, ShiftCommand(false, true))
}

func (d *Dev) commandContext(ctx context.Context, cmd byte) error {
	if !d.ready {
		return ErrNotReady
	}
	return d.check(d.command(ctx, cmd))
}
