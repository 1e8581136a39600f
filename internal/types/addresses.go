package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// HighPage is the base address of the 0xFF00 page, used by
	// the LDH (a8) and LD (C) instructions to reach the hardware
	// registers with a single byte offset.
	HighPage HardwareAddress = 0xFF00
	// SB is the address of the SB hardware register. The SB
	// hardware register is used to transfer data between the
	// CPU and the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	//
	//  Bit 7: Transfer Start Flag (1=Transfer in progress, or requested)
	//  Bit 0: Shift Clock (0=External Clock, 1=Internal Clock)
	SC HardwareAddress = 0xFF02
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to control the LCD, see
	// lcd.Controller for the meaning of each bit.
	LCDC HardwareAddress = 0xFF40
	// VBK is the address of the VBK hardware register. The VBK
	// hardware register selects which of the two VRAM banks is
	// mapped to 0x8000 - 0x9FFF.
	VBK HardwareAddress = 0xFF4F
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts. Writing a 1
	// to a bit in IE Enables the corresponding interrupt, and writing
	// a 0 disables the corresponding interrupt.
	IE HardwareAddress = 0xFFFF
)

const (
	// VRAMStart is the first address of video RAM.
	VRAMStart uint16 = 0x8000
	// VRAMEnd is the last address of video RAM.
	VRAMEnd uint16 = 0x9FFF
	// OAMStart is the first address of the sprite attribute table.
	OAMStart uint16 = 0xFE00
	// OAMEnd is the last address of the sprite attribute table.
	OAMEnd uint16 = 0xFE9F
	// ROMEnd is the last address of the cartridge ROM window.
	ROMEnd uint16 = 0x7FFF
)
