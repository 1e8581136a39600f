// Package cpu implements the Sharp LR35902 (SM83) instruction set used by
// the Game Boy: the register file, the ALU, the primary and CB-prefixed
// instruction tables and the control-flow unit.
//
// The CPU is driven one instruction at a time with Step, which reports how
// many clock ticks the instruction took so the caller can keep the rest of
// the system in lockstep.
package cpu

import (
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// TicksPerCycle is the number of clock ticks in a machine cycle.
	TicksPerCycle = 4
)

// Bus is the memory the CPU executes from. Implementations are responsible
// for all address decoding; the CPU passes addresses through unchanged and
// assumes accesses never fail.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// ReadWord reads a little-endian 16-bit value.
	ReadWord(address uint16) uint16
	// WriteWord writes a little-endian 16-bit value.
	WriteWord(address uint16, value uint16)
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is the halt CPU mode, entered by HALT.
	ModeHalt
	// ModeStop is the stop CPU mode, entered by STOP.
	ModeStop
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the register pairs, PC and SP.
	Registers

	// Debug logs every executed instruction when set.
	Debug bool
	// Log receives the instruction trace when Debug is set.
	Log log.Logger

	bus Bus
	irq *interrupts.Service

	cycles uint8
	mode   mode
}

// NewCPU creates a new CPU executing from the given Bus. The interrupt
// service holds the interrupt master enable flag toggled by EI, DI and
// RETI; a fresh one is created when irq is nil.
func NewCPU(bus Bus, irq *interrupts.Service) *CPU {
	if irq == nil {
		irq = interrupts.NewService()
	}
	c := &CPU{
		Registers: newRegisters(),
		Log:       log.NewNullLogger(),
		bus:       bus,
		irq:       irq,
	}
	c.bindPairs()

	return c
}

// Step fetches, decodes and executes a single instruction and returns the
// number of clock ticks it took. While halted or stopped no instruction is
// fetched and a single machine cycle elapses.
func (c *CPU) Step() uint8 {
	if c.mode != ModeNormal {
		return TicksPerCycle
	}

	var pc uint16
	var text string
	if c.Debug {
		pc = c.PC
		text, _ = Disassemble(c.bus, pc)
	}

	instruction := InstructionSet[c.readOperand()]
	c.cycles = instruction.cycles
	instruction.fn(c)

	if c.Debug {
		c.Log.Debugf("%04X %-16s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X (%d ticks)",
			pc, text, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.cycles*TicksPerCycle)
	}

	return c.cycles * TicksPerCycle
}

// Halted returns true while the CPU is suspended by HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Stopped returns true while the CPU is suspended by STOP.
func (c *CPU) Stopped() bool {
	return c.mode == ModeStop
}

// Wake resumes fetching after HALT or STOP. It is called by whatever
// delivers interrupts.
func (c *CPU) Wake() {
	c.mode = ModeNormal
}

// IME returns the interrupt master enable flag.
func (c *CPU) IME() bool {
	return c.irq.IME
}

// Interrupts returns the interrupt service the CPU toggles IME on.
func (c *CPU) Interrupts() *interrupts.Service {
	return c.irq
}

// readOperand reads the byte at PC and advances PC past it.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little-endian word at PC and advances PC past it.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// tick adds machine cycles to the instruction being executed, used by
// conditional instructions whose condition was met.
func (c *CPU) tick(cycles uint8) {
	c.cycles += cycles
}
