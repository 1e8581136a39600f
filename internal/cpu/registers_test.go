package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_Pairs(t *testing.T) {
	c, _ := newTestCPU()

	c.Write16(PairBC, 0x1234)
	assert.Equal(t, uint8(0x12), c.B)
	assert.Equal(t, uint8(0x34), c.C)

	c.D, c.E = 0xAB, 0xCD
	assert.Equal(t, uint16(0xABCD), c.Read16(PairDE))
	assert.Equal(t, uint16(0xABCD), c.DE.Uint16())

	c.HL.SetUint16(0x8001)
	assert.Equal(t, uint8(0x80), c.Read8(RegH))
	assert.Equal(t, uint8(0x01), c.Read8(RegL))

	c.Write16(PairSP, 0xC0DE)
	assert.Equal(t, uint16(0xC0DE), c.SP)
	assert.Equal(t, uint16(0x8001), c.Read16(PairHL), "SP is not an alias")
}

func TestRegisters_FlagNibble(t *testing.T) {
	c, _ := newTestCPU()

	c.Write8(RegF, 0xFF)
	assert.Equal(t, uint8(0xF0), c.F)

	c.Write16(PairAF, 0x12FF)
	assert.Equal(t, uint8(0x12), c.A)
	assert.Equal(t, uint8(0xF0), c.F)
	assert.Equal(t, uint16(0x12F0), c.Read16(PairAF))
}

func TestRegisters_InvalidSelector(t *testing.T) {
	c, _ := newTestCPU()

	assert.Panics(t, func() { c.Read8(Reg8(8)) })
	assert.Panics(t, func() { c.Write8(Reg8(42), 0) })
	assert.Panics(t, func() { c.Read16(Pair(5)) })
	assert.Panics(t, func() { c.Write16(Pair(5), 0) })
	assert.Panics(t, func() { c.Flag(Flag(3)) })
	assert.Panics(t, func() { c.SetFlag(Flag(8), true) })
}

func TestRegisters_SetFlags(t *testing.T) {
	c, _ := newTestCPU()

	c.SetFlags(true, false, true, false)
	assert.Equal(t, uint8(0xA0), c.F)
	assert.True(t, c.Flag(FlagZero))
	assert.False(t, c.Flag(FlagSubtract))
	assert.True(t, c.Flag(FlagHalfCarry))
	assert.False(t, c.Flag(FlagCarry))

	c.SetFlags(false, true, false, true)
	assert.Equal(t, uint8(0x50), c.F)

	c.SetFlag(FlagZero, true)
	c.SetFlag(FlagCarry, false)
	assert.Equal(t, uint8(0xC0), c.F)
}

func TestRegisters_HLStep(t *testing.T) {
	c, _ := newTestCPU()
	c.HL.SetUint16(0xFFFF)

	assert.Equal(t, uint16(0xFFFF), c.HLIncrement())
	assert.Equal(t, uint16(0x0000), c.HL.Uint16())

	assert.Equal(t, uint16(0x0000), c.HLDecrement())
	assert.Equal(t, uint16(0xFFFF), c.HL.Uint16())
}

func TestRegisters_ResetState(t *testing.T) {
	c, _ := newTestCPU()

	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Zero(t, c.Read16(PairAF))
	assert.Zero(t, c.Read16(PairBC))
	assert.Zero(t, c.Read16(PairDE))
	assert.Zero(t, c.Read16(PairHL))
	assert.False(t, c.IME())
	assert.False(t, c.Halted())
}

func TestLoad_HLIndirect(t *testing.T) {
	// LD (HL+), A; LD A, (HL-); LD (HL), d8; LD B, (HL)
	c, bus := newTestCPU(0x22, 0x3A, 0x36, 0x99, 0x46)
	c.A = 0x42
	c.HL.SetUint16(0xC000)

	c.Step()
	assert.Equal(t, uint8(0x42), bus.memory[0xC000])
	assert.Equal(t, uint16(0xC001), c.HL.Uint16())

	bus.memory[0xC001] = 0x24
	c.Step()
	assert.Equal(t, uint8(0x24), c.A)
	assert.Equal(t, uint16(0xC000), c.HL.Uint16())

	c.Step()
	assert.Equal(t, uint8(0x99), bus.memory[0xC000])

	c.Step()
	assert.Equal(t, uint8(0x99), c.B)
	assert.Equal(t, uint16(0x0105), c.PC)
}

func TestLoad_HighPage(t *testing.T) {
	// LDH (a8), A; LD A, (C); LD (a16), SP
	c, bus := newTestCPU(0xE0, 0x80, 0xF2, 0x08, 0x00, 0xD0)
	c.A, c.C = 0x5A, 0x81
	bus.memory[0xFF81] = 0xA5

	c.Step()
	assert.Equal(t, uint8(0x5A), bus.memory[0xFF80])

	c.Step()
	assert.Equal(t, uint8(0xA5), c.A)

	c.SP = 0xBEEF
	c.Step()
	assert.Equal(t, uint8(0xEF), bus.memory[0xD000])
	assert.Equal(t, uint8(0xBE), bus.memory[0xD001])
}
