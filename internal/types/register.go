package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers viewed as a single 16-bit
// value. It holds no storage of its own: reads and writes go straight to
// the two underlying Registers, high byte first.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// NewRegisterPair returns a RegisterPair viewing high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}
