package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/types"
)

// loadRegister16 loads a 16-bit immediate into the given register pair.
//
//	LD rr, d16
//	rr = BC, DE, HL, SP
func (c *CPU) loadRegister16(pair Pair) {
	c.Write16(pair, c.readOperand16())
}

// loadRegisterToHardware writes the A Register to the high page.
//
//	LD (0xFF00 + n), A
//	n = C, a8
func (c *CPU) loadRegisterToHardware(offset uint8) {
	c.writeByte(types.HighPage+uint16(offset), c.A)
}

// loadHardwareToRegister reads the high page into the A Register.
//
//	LD A, (0xFF00 + n)
//	n = C, a8
func (c *CPU) loadHardwareToRegister(offset uint8) {
	c.A = c.readByte(types.HighPage + uint16(offset))
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76, which would be LD (HL), (HL), is HALT.
func generateLoadRegisterToRegisterInstructions() {
	for i := uint8(0); i < 8; i++ {
		to := operand(i)
		for j := uint8(0); j < 8; j++ {
			from := operand(j)
			if to.isMemory() && from.isMemory() {
				continue
			}

			cycles := uint8(1)
			if to.isMemory() || from.isMemory() {
				cycles = 2
			}
			DefineInstruction(0x40+i<<3+j, fmt.Sprintf("LD %s, %s", to, from), func(c *CPU) {
				c.write(to, c.read(from))
			}, Cycles(cycles))
		}
	}
}

func init() {
	generateLoadRegisterToRegisterInstructions()

	for i, pair := range pairs {
		pair := pair
		DefineInstruction(0x01+uint8(i)<<4, fmt.Sprintf("LD %s, d16", pair), func(c *CPU) {
			c.loadRegister16(pair)
		}, Length(3), Cycles(3))
	}

	for i := uint8(0); i < 8; i++ {
		o := operand(i)
		cycles := uint8(2)
		if o.isMemory() {
			cycles = 3
		}
		DefineInstruction(0x06+i<<3, fmt.Sprintf("LD %s, d8", o), func(c *CPU) {
			c.write(o, c.readOperand())
		}, Length(2), Cycles(cycles))
	}

	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) }, Cycles(2))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) }, Cycles(2))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) }, Cycles(2))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) }, Cycles(2))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) { c.writeByte(c.HLIncrement(), c.A) }, Cycles(2))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) { c.A = c.readByte(c.HLIncrement()) }, Cycles(2))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) { c.writeByte(c.HLDecrement(), c.A) }, Cycles(2))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) { c.A = c.readByte(c.HLDecrement()) }, Cycles(2))
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		c.bus.WriteWord(c.readOperand16(), c.SP)
	}, Length(3), Cycles(5))

	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.loadRegisterToHardware(c.readOperand())
	}, Length(2), Cycles(3))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.loadHardwareToRegister(c.readOperand())
	}, Length(2), Cycles(3))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) { c.loadRegisterToHardware(c.C) }, Cycles(2))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) { c.loadHardwareToRegister(c.C) }, Cycles(2))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		c.writeByte(c.readOperand16(), c.A)
	}, Length(3), Cycles(4))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		c.A = c.readByte(c.readOperand16())
	}, Length(3), Cycles(4))
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	}, Length(2), Cycles(3))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) { c.SP = c.HL.Uint16() }, Cycles(2))
}
