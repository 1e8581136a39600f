package cpu

import (
	"github.com/thelolagemann/gomeboy/internal/types"
)

// add adds n, and the carry flag if withCarry is set, to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint16
	if withCarry {
		carry = uint16(c.carryBit())
	}
	sum := uint16(c.A) + uint16(n) + carry
	sumHalf := uint16(c.A&0xF) + uint16(n&0xF) + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n, and the carry flag if withCarry is set, from the A
// Register.
//
//	SUB A, n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry int16
	if withCarry {
		carry = int16(c.carryBit())
	}
	diff := int16(c.A) - int16(n) - carry
	diffHalf := int16(c.A&0xF) - int16(n&0xF) - carry

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.A = uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, setting the flags as SUB would
// without storing the result.
//
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// testBit tests the given bit of value.
//
//	BIT b, r
//	b = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, bit uint8) {
	c.setFlags(value&(1<<bit) == 0, false, true, c.isFlagSet(FlagCarry))
}

// setBit sets the given bit of value. No flags are affected.
//
//	SET b, r
func setBit(value uint8, bit uint8) uint8 {
	return value | 1<<bit
}

// resetBit clears the given bit of value. No flags are affected.
//
//	RES b, r
func resetBit(value uint8, bit uint8) uint8 {
	return value &^ (1 << bit)
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	carry := n & types.Bit7
	computed := n<<1 | carry>>7
	c.setFlags(computed == 0, false, false, carry == types.Bit7)
	return computed
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	carry := n & types.Bit0
	computed := n>>1 | carry<<7
	c.setFlags(computed == 0, false, false, carry == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryBit()
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied
// to the most significant bit, and the least significant bit is copied to the
// carry flag.
//
//	RR n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryBit()<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftLeftArithmetic shifts n left by one bit into the carry flag.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right by one bit into the carry flag. The
// most significant bit does not change.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftRightLogical shifts n right by one bit into the carry flag. The most
// significant bit is cleared.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// accumulator runs a CB rotate on the A Register the way the one byte
// RLCA, RRCA, RLA and RRA instructions do: identical, except that the zero
// flag is always reset.
func (c *CPU) accumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.clearFlag(FlagZero)
}
