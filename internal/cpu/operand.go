package cpu

import "fmt"

// operand is one of the eight sources addressed by the low three bits of
// the register block opcodes, in encoding order: B, C, D, E, H, L, (HL), A.
type operand uint8

const (
	operandB operand = iota
	operandC
	operandD
	operandE
	operandH
	operandL
	operandHL
	operandA
)

var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// String returns the operand as written in assembly.
func (o operand) String() string {
	if o > operandA {
		return fmt.Sprintf("operand(%d)", uint8(o))
	}
	return operandNames[o]
}

// isMemory returns true for the HL-indirect operand.
func (o operand) isMemory() bool {
	return o == operandHL
}

// register maps an operand onto its register, the HL-indirect operand has
// none.
func (o operand) register() Reg8 {
	switch o {
	case operandB:
		return RegB
	case operandC:
		return RegC
	case operandD:
		return RegD
	case operandE:
		return RegE
	case operandH:
		return RegH
	case operandL:
		return RegL
	case operandA:
		return RegA
	}
	panic(fmt.Sprintf("operand %s has no register", o))
}

// read returns the value of the operand, reading memory at HL for (HL).
func (c *CPU) read(o operand) uint8 {
	if o.isMemory() {
		return c.readByte(c.HL.Uint16())
	}
	return c.Read8(o.register())
}

// write stores a value into the operand, writing memory at HL for (HL).
func (c *CPU) write(o operand, value uint8) {
	if o.isMemory() {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	c.Write8(o.register(), value)
}

// modify reads the operand, passes it through fn and writes the result
// back to the same place.
func (c *CPU) modify(o operand, fn func(uint8) uint8) {
	c.write(o, fn(c.read(o)))
}
