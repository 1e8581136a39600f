package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/types"
)

// Reg8 selects one of the 8-bit registers.
type Reg8 uint8

const (
	RegA Reg8 = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

// String returns the register name.
func (r Reg8) String() string {
	if r > RegL {
		return fmt.Sprintf("Reg8(%d)", uint8(r))
	}
	return [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}[r]
}

// Pair selects one of the 16-bit registers.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
	PairSP
)

// String returns the register pair name.
func (p Pair) String() string {
	if p > PairSP {
		return fmt.Sprintf("Pair(%d)", uint8(p))
	}
	return [...]string{"AF", "BC", "DE", "HL", "SP"}[p]
}

// Registers contains the 8-bit registers, the register pairs that view them
// as 16-bit values, and the program counter and stack pointer.
type Registers struct {
	A types.Register
	F types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register

	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16

	AF *types.RegisterPair
	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
}

// newRegisters returns the register file in its power-on state: every
// register zeroed apart from SP.
func newRegisters() Registers {
	return Registers{SP: 0xFFFE}
}

// bindPairs points the register pairs at the 8-bit registers. It must be
// called once the Registers have reached their final location in memory.
func (r *Registers) bindPairs() {
	r.AF = types.NewRegisterPair(&r.A, &r.F)
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
}

// register returns a pointer to the storage of an 8-bit register.
func (r *Registers) register(reg Reg8) *types.Register {
	switch reg {
	case RegA:
		return &r.A
	case RegF:
		return &r.F
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", reg))
}

// Read8 returns the value of an 8-bit register.
func (r *Registers) Read8(reg Reg8) uint8 {
	return *r.register(reg)
}

// Write8 sets the value of an 8-bit register. The low nibble of F
// always reads as zero, so it is cleared on write.
func (r *Registers) Write8(reg Reg8, value uint8) {
	if reg == RegF {
		value &= 0xF0
	}
	*r.register(reg) = value
}

// Read16 returns the value of a register pair, or of SP.
func (r *Registers) Read16(pair Pair) uint16 {
	switch pair {
	case PairAF:
		return r.AF.Uint16()
	case PairBC:
		return r.BC.Uint16()
	case PairDE:
		return r.DE.Uint16()
	case PairHL:
		return r.HL.Uint16()
	case PairSP:
		return r.SP
	}
	panic(fmt.Sprintf("invalid register pair: %d", pair))
}

// Write16 sets the value of a register pair, or of SP.
func (r *Registers) Write16(pair Pair, value uint16) {
	switch pair {
	case PairAF:
		r.AF.SetUint16(value & 0xFFF0)
	case PairBC:
		r.BC.SetUint16(value)
	case PairDE:
		r.DE.SetUint16(value)
	case PairHL:
		r.HL.SetUint16(value)
	case PairSP:
		r.SP = value
	default:
		panic(fmt.Sprintf("invalid register pair: %d", pair))
	}
}

// HLIncrement stores HL+1 in HL and returns the value HL held before.
func (r *Registers) HLIncrement() uint16 {
	hl := r.HL.Uint16()
	r.HL.SetUint16(hl + 1)
	return hl
}

// HLDecrement stores HL-1 in HL and returns the value HL held before.
func (r *Registers) HLDecrement() uint16 {
	hl := r.HL.Uint16()
	r.HL.SetUint16(hl - 1)
	return hl
}
