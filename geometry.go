/*
Copyright 2024 Tim St. Pierre
Display geometry and DDRAM addressing
*/
package lcm1602

import (
	"fmt"
	"strconv"
	"strings"
)

// Geometry is the visible size of the display.
//
// Rows also drives the function set: 0 selects the one line mode, anything
// else the two line mode that all multi row modules use.
type Geometry struct {
	Rows uint8
	Cols uint8
}

var (
	Geometry1x16 = Geometry{Rows: 0, Cols: 16}
	Geometry2x16 = Geometry{Rows: 2, Cols: 16}
	Geometry4x16 = Geometry{Rows: 4, Cols: 16}
	Geometry4x20 = Geometry{Rows: 4, Cols: 20}
)

var (
	rowOffsets     = [4]byte{0x00, 0x40, 0x14, 0x54}
	rowOffsets16x4 = [4]byte{0x00, 0x40, 0x10, 0x50}
)

// Offsets returns the DDRAM base address of each row.
func (g Geometry) Offsets() [4]byte {
	if g.Rows == 4 && g.Cols == 16 {
		return rowOffsets16x4
	}
	return rowOffsets
}

// MaxRows is the number of addressable rows, at least one.
func (g Geometry) MaxRows() uint8 {
	if g.Rows == 0 {
		return 1
	}
	return g.Rows
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.MaxRows())
}

// ParseGeometry reads "COLSxROWS", e.g. "16x2" or "20x4". A single row
// module ("16x1") maps to Rows 0.
func ParseGeometry(s string) (Geometry, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Geometry{}, fmt.Errorf("lcm1602: geometry %q: want COLSxROWS", s)
	}
	cols, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Geometry{}, fmt.Errorf("lcm1602: geometry %q: %v", s, err)
	}
	rows, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Geometry{}, fmt.Errorf("lcm1602: geometry %q: %v", s, err)
	}
	if rows > 4 || cols == 0 {
		return Geometry{}, fmt.Errorf("lcm1602: geometry %q not supported", s)
	}
	if rows == 1 {
		rows = 0
	}
	return Geometry{Rows: uint8(rows), Cols: uint8(cols)}, nil
}

// RowColToAddress maps a zero based position to a DDRAM address. Nothing is
// checked: rows past the table wrap, columns past the display land in
// whatever DDRAM cell they hit.
func RowColToAddress(row, col uint8, g Geometry) byte {
	offsets := g.Offsets()
	return (offsets[row%uint8(len(offsets))] + col) & ddramMask
}

func (g Geometry) check(row, col uint8) error {
	if row >= g.MaxRows() {
		return fmt.Errorf("lcm1602: display does not support row %d of %s", row, g)
	}
	if g.Cols > 0 && col >= g.Cols {
		return fmt.Errorf("lcm1602: display does not support column %d of %s", col, g)
	}
	return nil
}
