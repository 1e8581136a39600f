package cpu

import "fmt"

// pairs is the register pair column of the 16-bit load and arithmetic
// opcodes, addressed by bits 4-5.
var pairs = [4]Pair{PairBC, PairDE, PairHL, PairSP}

// addHLRR adds the given register pair to HL.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR(pair Pair) {
	hl, rr := c.HL.Uint16(), c.Read16(pair)
	sum := uint32(hl) + uint32(rr)

	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(rr&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned reads a signed immediate and returns SP plus that immediate.
// The flags come from the unsigned addition of the low bytes.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	value := c.readOperand()
	result := c.SP + uint16(int8(value))

	c.setFlags(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

// decimalAdjust corrects the A Register to packed BCD after an addition or
// subtraction of two packed BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the upper digit was corrected.
func (c *CPU) decimalAdjust() {
	subtract := c.isFlagSet(FlagSubtract)
	var correction uint8
	if c.isFlagSet(FlagHalfCarry) || !subtract && c.A&0xF > 0x9 {
		correction |= 0x06
	}
	if c.isFlagSet(FlagCarry) || !subtract && c.A > 0x99 {
		correction |= 0x60
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, subtract, false, correction >= 0x60)
}

func init() {
	for i := uint8(0); i < 8; i++ {
		o := operand(i)
		cycles := uint8(1)
		if o.isMemory() {
			cycles = 3
		}
		DefineInstruction(0x04+i<<3, fmt.Sprintf("INC %s", o), func(c *CPU) {
			c.modify(o, c.increment)
		}, Cycles(cycles))
		DefineInstruction(0x05+i<<3, fmt.Sprintf("DEC %s", o), func(c *CPU) {
			c.modify(o, c.decrement)
		}, Cycles(cycles))
	}

	for i, pair := range pairs {
		pair := pair
		opcode := uint8(i) << 4
		DefineInstruction(0x03+opcode, fmt.Sprintf("INC %s", pair), func(c *CPU) {
			c.Write16(pair, c.Read16(pair)+1)
		}, Cycles(2))
		DefineInstruction(0x0B+opcode, fmt.Sprintf("DEC %s", pair), func(c *CPU) {
			c.Write16(pair, c.Read16(pair)-1)
		}, Cycles(2))
		DefineInstruction(0x09+opcode, fmt.Sprintf("ADD HL, %s", pair), func(c *CPU) {
			c.addHLRR(pair)
		}, Cycles(2))
	}

	DefineInstruction(0x07, "RLCA", func(c *CPU) { c.accumulator((*CPU).rotateLeftCarry) })
	DefineInstruction(0x0F, "RRCA", func(c *CPU) { c.accumulator((*CPU).rotateRightCarry) })
	DefineInstruction(0x17, "RLA", func(c *CPU) { c.accumulator((*CPU).rotateLeftThroughCarry) })
	DefineInstruction(0x1F, "RRA", func(c *CPU) { c.accumulator((*CPU).rotateRightThroughCarry) })
	DefineInstruction(0x27, "DAA", func(c *CPU) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))
	})
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
	}, Length(2), Cycles(4))
}
