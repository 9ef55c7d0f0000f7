/*
Copyright 2024 Tim St. Pierre
*/
package lcm1602

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructions(t *testing.T) {
	assert.Equal(t, byte(0x01), ClearCommand())
	assert.Equal(t, byte(0x02), HomeCommand())
	assert.True(t, NeedsExecDelay(ClearCommand()))
	assert.True(t, NeedsExecDelay(HomeCommand()))
	assert.False(t, NeedsExecDelay(EntryMode()))

	assert.Equal(t, byte(0xc5), DDRAMCommand(0x45))
	assert.Equal(t, byte(0x80), DDRAMCommand(0x80))

	assert.Equal(t, byte(0x30), HandshakeNibble(true))
	assert.Equal(t, byte(0x20), HandshakeNibble(false))

	assert.Equal(t, byte(0x06), EntryMode())

	assert.Equal(t, byte(0x10), ShiftCommand(false, false))
	assert.Equal(t, byte(0x14), ShiftCommand(false, true))
	assert.Equal(t, byte(0x18), ShiftCommand(true, false))
	assert.Equal(t, byte(0x1c), ShiftCommand(true, true))
}

func TestFunctionSet(t *testing.T) {
	type Case struct {
		name string
		font Font
		rows uint8
		want byte
	}
	cases := []Case{
		{"1line", Font5x8, 0, 0x20},
		{"2lines", Font5x8, Geometry2x16.Rows, 0x28},
		{"4lines", Font5x8, Geometry4x20.Rows, 0x28},
		{"1line-5x10", Font5x10, 0, 0x24},
		{"2lines-5x10", Font5x10, 2, 0x2c},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := FunctionSet(c.font, c.rows)
			assert.Equal(t, c.want, got)
			assert.Zero(t, got&OPT_8_Bit)
		})
	}
}

func TestDisplayControl(t *testing.T) {
	assert.Equal(t, byte(0x0c), DisplayControl(false, false))
	assert.Equal(t, byte(0x0e), DisplayControl(true, false))
	assert.Equal(t, byte(0x0d), DisplayControl(false, true))
	assert.Equal(t, byte(0x0f), DisplayControl(true, true))
}

func TestFontByName(t *testing.T) {
	f, ok := FontByName("5x10")
	assert.True(t, ok)
	assert.Equal(t, Font5x10, f)
	assert.Equal(t, "5x10", f.String())
	f, ok = FontByName("")
	assert.True(t, ok)
	assert.Equal(t, Font5x8, f)
	_, ok = FontByName("8x8")
	assert.False(t, ok)
}
