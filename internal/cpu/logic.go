package cpu

import "fmt"

// aluOperation is one of the eight operations of the 0x80 - 0xBF block,
// in encoding order.
type aluOperation struct {
	name string
	fn   func(c *CPU, n uint8)
}

var aluOperations = [8]aluOperation{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

// generateALUInstructions generates the register and immediate forms of the
// eight ALU operations.
//
//	0x80 ADD A, B
//	0x81 ADD A, C
//	....
//	0xBF CP A
//	0xC6 ADD A, d8
//	....
//	0xFE CP d8
func generateALUInstructions() {
	for i, op := range aluOperations {
		op := op
		for j := uint8(0); j < 8; j++ {
			o := operand(j)
			cycles := uint8(1)
			if o.isMemory() {
				cycles = 2
			}
			DefineInstruction(0x80+uint8(i)<<3+j, fmt.Sprintf("%s %s", op.name, o), func(c *CPU) {
				op.fn(c, c.read(o))
			}, Cycles(cycles))
		}

		DefineInstruction(0xC6+uint8(i)<<3, fmt.Sprintf("%s d8", op.name), func(c *CPU) {
			op.fn(c, c.readOperand())
		}, Length(2), Cycles(2))
	}
}

func init() {
	generateALUInstructions()
}
