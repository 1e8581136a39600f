// Package gameboy wires the CPU to its memory and steps them together.
package gameboy

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy/internal/cpu"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/mmu"
	"github.com/thelolagemann/gomeboy/internal/ppu"
	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Interrupts *interrupts.Service
	Serial     *serial.Controller

	log.Logger

	currentCycle uint64
}

// NewGameBoy returns a new GameBoy with rom mapped at 0x0000. Unless the
// NoBios option is given, execution starts at 0x0000 with every register
// zeroed apart from SP.
func NewGameBoy(rom []byte, opts ...Opt) *GameBoy {
	interrupt := interrupts.NewService()
	video := ppu.New()
	port := serial.NewController(interrupt)

	memBus := mmu.NewMMU()
	memBus.AttachVideo(video)
	memBus.AttachSerial(port)
	memBus.AttachInterrupts(interrupt)

	g := &GameBoy{
		CPU:        cpu.NewCPU(memBus, interrupt),
		MMU:        memBus,
		PPU:        video,
		Interrupts: interrupt,
		Serial:     port,
		Logger:     log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.MMU.Log = g.Logger
	g.CPU.Log = g.Logger
	if len(rom) > 0 {
		g.MMU.LoadROM(rom)
	}

	return g
}

// Step executes a single instruction and returns the number of clock ticks
// it took. A halted or stopped CPU is woken first if an enabled interrupt
// is pending.
func (g *GameBoy) Step() uint8 {
	if g.CPU.Halted() && g.Interrupts.HasInterrupts() {
		g.CPU.Wake()
	}

	ticks := g.CPU.Step()
	g.currentCycle += uint64(ticks)
	return ticks
}

// RunCycles steps the Game Boy until at least n clock ticks have elapsed,
// and returns the number of ticks actually run.
func (g *GameBoy) RunCycles(n uint64) uint64 {
	var ran uint64
	for ran < n {
		ran += uint64(g.Step())
	}
	return ran
}

// Frame steps the Game Boy for the duration of a single frame.
func (g *GameBoy) Frame() uint64 {
	return g.RunCycles(CyclesPerFrame)
}

// Cycles returns the total number of clock ticks run so far.
func (g *GameBoy) Cycles() uint64 {
	return g.currentCycle
}

// Fingerprint returns a hash of the architectural state: the register
// file, IME, the CPU mode and every byte of the address space. Two Game
// Boys that ran the same program from the same state have equal
// fingerprints.
func (g *GameBoy) Fingerprint() uint64 {
	c := g.CPU
	state := make([]byte, 0, 16+0x10000)
	state = append(state, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L)
	state = binary.LittleEndian.AppendUint16(state, c.PC)
	state = binary.LittleEndian.AppendUint16(state, c.SP)

	var flags uint8
	if c.IME() {
		flags |= 1
	}
	if c.Halted() {
		flags |= 2
	}
	if c.Stopped() {
		flags |= 4
	}
	state = append(state, flags)

	for addr := 0; addr <= 0xFFFF; addr++ {
		state = append(state, g.MMU.Read(uint16(addr)))
	}

	return xxhash.Sum64(state)
}
