package cpu

import "fmt"

// Flag is the bit position of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

func checkFlag(flag Flag) {
	if flag < FlagCarry || flag > FlagZero {
		panic(fmt.Sprintf("invalid flag: %d", flag))
	}
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	checkFlag(flag)
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears the given flag.
func (r *Registers) SetFlag(flag Flag, value bool) {
	checkFlag(flag)
	if value {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
}

// SetFlags sets all four flags at once, each from its own argument.
func (r *Registers) SetFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= 1 << FlagZero
	}
	if subtract {
		f |= 1 << FlagSubtract
	}
	if halfCarry {
		f |= 1 << FlagHalfCarry
	}
	if carry {
		f |= 1 << FlagCarry
	}
	r.F = f
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.SetFlag(flag, true)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.SetFlag(flag, false)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.Flag(flag)
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.SetFlags(zero, subtract, halfCarry, carry)
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return c.F >> FlagCarry & 1
}
