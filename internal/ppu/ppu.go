// Package ppu provides the video memory of the Game Boy: two banks of
// VRAM, the sprite attribute table (OAM) and the LCD control register.
// Rendering is not modelled.
package ppu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/ppu/lcd"
	"github.com/thelolagemann/gomeboy/internal/ram"
	"github.com/thelolagemann/gomeboy/internal/types"
)

const (
	// VRAMBankSize is the size of a single VRAM bank.
	VRAMBankSize = 0x2000
	// OAMSize is the size of the sprite attribute table.
	OAMSize = 0xA0
)

// PPU implements the memory facing side of the Game Boy's (P)ixel
// (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
type PPU struct {
	*lcd.Controller

	vRAM     [2]ram.RAM // 0x8000 - 0x9FFF, banked by VBK
	vRAMBank uint8      // VBK.0
	oam      ram.RAM    // 0xFE00 - 0xFE9F
}

// New returns a new PPU with zeroed memory and bank 0 selected.
func New() *PPU {
	return &PPU{
		Controller: lcd.NewController(),
		vRAM:       [2]ram.RAM{ram.NewRAM(VRAMBankSize), ram.NewRAM(VRAMBankSize)},
		oam:        ram.NewRAM(OAMSize),
	}
}

// Bank returns the currently selected VRAM bank.
func (p *PPU) Bank() uint8 {
	return p.vRAMBank
}

// Read returns the value at the given address.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= types.VRAMStart && address <= types.VRAMEnd:
		return p.vRAM[p.vRAMBank].Read(address - types.VRAMStart)
	case address >= types.OAMStart && address <= types.OAMEnd:
		return p.oam.Read(address - types.OAMStart)
	case address == types.LCDC:
		return p.Controller.Read(address)
	case address == types.VBK:
		return 0xFE | p.vRAMBank // only bit 0 is used
	}
	panic(fmt.Sprintf("ppu: illegal read from address %04X", address))
}

// Write writes the value to the given address.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= types.VRAMStart && address <= types.VRAMEnd:
		p.vRAM[p.vRAMBank].Write(address-types.VRAMStart, value)
	case address >= types.OAMStart && address <= types.OAMEnd:
		p.oam.Write(address-types.OAMStart, value)
	case address == types.LCDC:
		p.Controller.Write(address, value)
	case address == types.VBK:
		p.vRAMBank = value & types.Bit0
	default:
		panic(fmt.Sprintf("ppu: illegal write to address %04X", address))
	}
}
