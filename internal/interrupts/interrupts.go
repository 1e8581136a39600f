package interrupts

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3), which is
	// requested when a serial transfer is completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service holds the interrupt master enable flag and the interrupt
// registers.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When an interrupt is enabled, the corresponding bit in
// the Enable register is set. Dispatching a pending interrupt to its vector
// is left to whoever drives the CPU; the Service only stores state.
//
// IME is set by the EI and RETI instructions and cleared by DI.
type Service struct {
	IME    bool  // interrupt master enable
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service with every interrupt disabled.
func NewService() *Service {
	return &Service{}
}

// Read returns the value of the IF or IE register.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	panic(fmt.Sprintf("interrupts: illegal read from address %04X", address))
}

// Write sets the value of the IF or IE register.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	default:
		panic(fmt.Sprintf("interrupts: illegal write to address %04X", address))
	}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}
