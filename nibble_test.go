/*
Copyright 2024 Tim St. Pierre
*/
package lcm1602

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramesReassemble(t *testing.T) {
	for _, tm := range []Timing{TimingModern, TimingLegacy} {
		for _, rs := range []bool{false, true} {
			for v := 0; v < 256; v++ {
				b := byte(v)
				fs := Frames(b, rs, true, tm)
				require.Len(t, fs, 2*tm.Frames)
				s := strobes(fs)
				require.Len(t, s, 2)
				assert.Equal(t, []byte{b}, bytesOf(s))
				for _, f := range fs {
					assert.Equal(t, rs, f&(1<<RS) != 0)
					assert.Zero(t, f&(1<<WR))
					assert.NotZero(t, f&(1<<BACKLIGHT))
				}
			}
		}
	}
}

func TestNibbleFramesModern(t *testing.T) {
	fs := NibbleFrames(0xa5, true, true, TimingModern)
	assert.Equal(t, []byte{0xa9, 0xad, 0xa9}, fs)

	fs = NibbleFrames(0x30, false, false, TimingModern)
	assert.Equal(t, []byte{0x30, 0x34, 0x30}, fs)
}

func TestNibbleFramesLegacy(t *testing.T) {
	fs := NibbleFrames(0x30, false, true, TimingLegacy)
	assert.Equal(t, []byte{0x3c, 0x38}, fs)
}

func TestBacklightFrame(t *testing.T) {
	assert.Equal(t, byte(0x08), backlightFrame(true))
	assert.Equal(t, byte(0x00), backlightFrame(false))
}

func TestPinInterpret(t *testing.T) {
	assert.Equal(t, byte(0x04), pinInterpret(EN, 0x00, true))
	assert.Equal(t, byte(0xfb), pinInterpret(EN, 0xff, false))
	assert.Equal(t, byte(0x80), pinInterpret(D7, 0x80, true))
}
