package cpu

import "fmt"

// cbShifts are the rotate, shift and swap operations of the first quarter
// of the CB table, in encoding order.
var cbShifts = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// generateCBInstructions fills the CB table. Every instruction operates on
// the register addressed by bits 0-2. Register forms take 2 cycles and
// (HL) forms take 4, apart from BIT b, (HL) which does not write back and
// takes 3. The costs include fetching the prefix.
//
//	0x00 - 0x3F RLC ... SRL
//	0x40 - 0x7F BIT b, r
//	0x80 - 0xBF RES b, r
//	0xC0 - 0xFF SET b, r
func generateCBInstructions() {
	for i := uint8(0); i < 8; i++ {
		o := operand(i)
		cycles, bitCycles := uint8(2), uint8(2)
		if o.isMemory() {
			cycles, bitCycles = 4, 3
		}

		for j, shift := range cbShifts {
			shift := shift
			DefineInstructionCB(uint8(j)<<3+i, fmt.Sprintf("%s %s", shift.name, o), func(c *CPU) {
				c.modify(o, func(n uint8) uint8 { return shift.fn(c, n) })
			}, Cycles(cycles))
		}

		for bit := uint8(0); bit < 8; bit++ {
			bit := bit
			DefineInstructionCB(0x40+bit<<3+i, fmt.Sprintf("BIT %d, %s", bit, o), func(c *CPU) {
				c.testBit(c.read(o), bit)
			}, Cycles(bitCycles))
			DefineInstructionCB(0x80+bit<<3+i, fmt.Sprintf("RES %d, %s", bit, o), func(c *CPU) {
				c.modify(o, func(n uint8) uint8 { return resetBit(n, bit) })
			}, Cycles(cycles))
			DefineInstructionCB(0xC0+bit<<3+i, fmt.Sprintf("SET %d, %s", bit, o), func(c *CPU) {
				c.modify(o, func(n uint8) uint8 { return setBit(n, bit) })
			}, Cycles(cycles))
		}
	}
}

func init() {
	generateCBInstructions()
}
