// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and handles all the memory
// reads and writes via the IOBus interface.
package mmu

import (
	"github.com/thelolagemann/gomeboy/internal/ram"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/pkg/log"
	"github.com/thelolagemann/gomeboy/pkg/utils"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// address is a single entry of the address decoder.
type address struct {
	Read  func(uint16) uint8
	Write func(uint16, uint8)
}

// MMU is the memory management unit for the Game Boy. It maps the 64kB
// address space onto flat RAM and delegates the regions owned by other
// components to them through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [0x10000]*address

	// backing storage for every address not owned by a component
	memory ram.RAM

	// 0x0000 - 0x7FFF - ROM (32kB), read-only once a ROM is loaded
	romLoaded bool

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF40, 0xFF4F  - LCDC, VBK
	Video IOBus

	// 0xFF01 - 0xFF02 - SB, SC
	Serial IOBus

	// 0xFF0F, 0xFFFF - IF, IE
	Interrupts IOBus

	Log log.Logger

	flat address
	rom  address
}

// NewMMU returns a new MMU where every address is flat RAM.
func NewMMU() *MMU {
	m := &MMU{
		memory: ram.NewRAM(0x10000),
		Log:    log.NewNullLogger(),
	}
	m.flat = address{Read: m.memory.Read, Write: m.memory.Write}
	m.rom = address{Read: m.memory.Read, Write: m.writeROM}

	for i := range m.raw {
		m.raw[i] = &m.flat
	}

	return m
}

// LoadROM copies up to 32kB of rom into 0x0000 - 0x7FFF and makes that
// window read-only.
func (m *MMU) LoadROM(rom []byte) {
	if len(rom) > int(types.ROMEnd)+1 {
		m.Log.Debugf("mmu: ROM is %d bytes, only the first 32kB are mapped", len(rom))
		rom = rom[:int(types.ROMEnd)+1]
	}
	for i, b := range rom {
		m.memory.Write(uint16(i), b)
	}

	m.romLoaded = true
	for i := uint16(0); i <= types.ROMEnd; i++ {
		m.raw[i] = &m.rom
	}
}

// ROMLoaded returns true once LoadROM has been called.
func (m *MMU) ROMLoaded() bool {
	return m.romLoaded
}

func (m *MMU) writeROM(address uint16, value uint8) {
	m.Log.Debugf("mmu: dropped write of %02X to ROM address %04X", value, address)
}

// AttachVideo attaches the video component to the MMU.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video
	bus := &address{Read: video.Read, Write: video.Write}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := types.VRAMStart; i <= types.VRAMEnd; i++ {
		m.raw[i] = bus
	}
	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	for i := types.OAMStart; i <= types.OAMEnd; i++ {
		m.raw[i] = bus
	}
	m.raw[types.LCDC] = bus
	m.raw[types.VBK] = bus
}

// AttachSerial attaches the serial port to the MMU.
func (m *MMU) AttachSerial(serial IOBus) {
	m.Serial = serial
	port := &address{Read: serial.Read, Write: serial.Write}
	m.raw[types.SB] = port
	m.raw[types.SC] = port
}

// AttachInterrupts attaches the interrupt registers to the MMU.
func (m *MMU) AttachInterrupts(irq IOBus) {
	m.Interrupts = irq
	registers := &address{Read: irq.Read, Write: irq.Write}
	m.raw[types.IF] = registers
	m.raw[types.IE] = registers
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}

// ReadWord returns the little-endian 16-bit value at the given address.
// The high byte is read from address+1, wrapping at the top of memory.
func (m *MMU) ReadWord(address uint16) uint16 {
	return utils.BytesToUint16(m.Read(address+1), m.Read(address))
}

// WriteWord writes a little-endian 16-bit value to the given address.
func (m *MMU) WriteWord(address uint16, value uint16) {
	high, low := utils.Uint16ToBytes(value)
	m.Write(address, low)
	m.Write(address+1, high)
}
