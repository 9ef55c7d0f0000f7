/*
Copyright 2024 Tim St. Pierre
HD44780 instruction encoding
*/
package lcm1602

const (
	// Commands
	CMD_Clear_Display        = 0x01
	CMD_Return_Home          = 0x02
	CMD_Entry_Mode           = 0x04
	CMD_Display_Control      = 0x08
	CMD_Cursor_Display_Shift = 0x10
	CMD_Function_Set         = 0x20
	CMD_DDRAM_Set            = 0x80

	// Options
	OPT_Increment      = 0x02 // CMD_Entry_Mode 0 = decrement
	OPT_Cursor_Shift   = 0x01 // CMD_Entry_Mode
	OPT_Enable_Display = 0x04 // CMD_Display_Control
	OPT_Enable_Cursor  = 0x02 // CMD_Display_Control
	OPT_Enable_Blink   = 0x01 // CMD_Display_Control
	OPT_Display_Shift  = 0x08 // CMD_Cursor_Display_Shift 0 = cursor
	OPT_Shift_Right    = 0x04 // CMD_Cursor_Display_Shift 0 = Left
	OPT_8_Bit          = 0x10 // CMD_Function_Set 0 = 4 bit bus
	OPT_2_Lines        = 0x08 // CMD_Function_Set 0 = 1 line
	OPT_5x10_Dots      = 0x04 // CMD_Function_Set 0 = 5x8 dots

	ddramMask = 0x7f
)

// Font selects the character matrix.
type Font byte

const (
	Font5x8  Font = 0x00
	Font5x10 Font = OPT_5x10_Dots
)

func (f Font) String() string {
	if f == Font5x10 {
		return "5x10"
	}
	return "5x8"
}

// FontByName parses "5x8" or "5x10". An empty name selects Font5x8.
func FontByName(name string) (Font, bool) {
	switch name {
	case "", "5x8":
		return Font5x8, true
	case "5x10":
		return Font5x10, true
	}
	return 0, false
}

// ClearCommand erases DDRAM and homes the cursor. Follow with ExecDelay.
func ClearCommand() byte { return CMD_Clear_Display }

// HomeCommand homes the cursor and the display shift. Follow with ExecDelay.
func HomeCommand() byte { return CMD_Return_Home }

// NeedsExecDelay reports whether cmd belongs to the slow clear/home class.
func NeedsExecDelay(cmd byte) bool {
	return cmd == CMD_Clear_Display || cmd == CMD_Return_Home
}

// DDRAMCommand moves the address counter to addr.
func DDRAMCommand(addr byte) byte {
	return CMD_DDRAM_Set | addr&ddramMask
}

// HandshakeNibble is the function set sent as a lone nibble while the
// controller may still be in 8-bit mode.
func HandshakeNibble(eightBit bool) byte {
	if eightBit {
		return CMD_Function_Set | OPT_8_Bit
	}
	return CMD_Function_Set
}

// FunctionSet is the 4-bit function set. Any non-zero rows value selects
// the two line mode.
func FunctionSet(font Font, rows uint8) byte {
	option := byte(CMD_Function_Set) | byte(font)&OPT_5x10_Dots
	if rows > 0 {
		option = option | OPT_2_Lines
	}
	return option
}

// DisplayControl keeps the display on and sets the cursor flags.
func DisplayControl(cursor, blink bool) byte {
	option := byte(CMD_Display_Control | OPT_Enable_Display)
	if cursor {
		option = option | OPT_Enable_Cursor
	}
	if blink {
		option = option | OPT_Enable_Blink
	}
	return option
}

// EntryMode is left to right entry without shifting the display on write.
func EntryMode() byte {
	return CMD_Entry_Mode | OPT_Increment
}

// ShiftCommand moves the cursor, or the whole display when display is set,
// by one position.
func ShiftCommand(display, right bool) byte {
	option := byte(CMD_Cursor_Display_Shift)
	if display {
		option = option | OPT_Display_Shift
	}
	if right {
		option = option | OPT_Shift_Right
	}
	return option
}
