// Package lcd decodes the LCD control register.
package lcd

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/pkg/bits"
)

// Controller is the LCD controller. Only the register is modelled, nothing
// is rendered from it.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	Enabled bool
	// WindowTileMapAddress is the start of the window tile map,
	// 0x9800 or 0x9C00.
	WindowTileMapAddress uint16
	WindowEnabled        bool
	// TileDataAddress is the start of the BG & window tile data, 0x8800
	// (signed indices) or 0x8000.
	TileDataAddress uint16
	// BackgroundTileMapAddress is the start of the background tile map,
	// 0x9800 or 0x9C00.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite in pixels, 8 or 16.
	SpriteSize        uint8
	SpriteEnabled     bool
	BackgroundEnabled bool
}

// NewController returns a new LCD controller with every bit of the
// register reset.
func NewController() *Controller {
	c := &Controller{}
	c.Write(types.LCDC, 0x00)
	return c
}

// Write writes the value to the LCD controller.
func (c *Controller) Write(address uint16, value uint8) {
	if address != types.LCDC {
		panic(fmt.Sprintf("lcd controller: invalid write to address 0x%04X", address))
	}

	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = tileMap(bits.Test(value, 6))
	c.WindowEnabled = bits.Test(value, 5)
	c.TileDataAddress = 0x8800
	if bits.Test(value, 4) {
		c.TileDataAddress = 0x8000
	}
	c.BackgroundTileMapAddress = tileMap(bits.Test(value, 3))
	c.SpriteSize = 8 + bits.Val(value, 2)*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read reads the value from the LCD controller.
func (c *Controller) Read(address uint16) uint8 {
	if address != types.LCDC {
		panic(fmt.Sprintf("lcd controller: invalid read from address 0x%04X", address))
	}

	var value uint8
	value = bits.Assign(value, 7, c.Enabled)
	value = bits.Assign(value, 6, c.WindowTileMapAddress == 0x9C00)
	value = bits.Assign(value, 5, c.WindowEnabled)
	value = bits.Assign(value, 4, c.TileDataAddress == 0x8000)
	value = bits.Assign(value, 3, c.BackgroundTileMapAddress == 0x9C00)
	value = bits.Assign(value, 2, c.SpriteSize == 16)
	value = bits.Assign(value, 1, c.SpriteEnabled)
	value = bits.Assign(value, 0, c.BackgroundEnabled)
	return value
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}

func tileMap(high bool) uint16 {
	if high {
		return 0x9C00
	}
	return 0x9800
}
