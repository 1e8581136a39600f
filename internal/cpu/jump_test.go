package cpu

import (
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestStack_RoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	f := func(value, sp uint16) bool {
		c.SP = sp
		c.push(value)
		if c.SP != sp-2 {
			return false
		}
		return c.pop() == value && c.SP == sp
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestStack_PushPop(t *testing.T) {
	// PUSH BC; POP AF; PUSH DE; POP HL
	c, bus := newTestCPU(0xC5, 0xF1, 0xD5, 0xE1)
	c.BC.SetUint16(0x12FF)
	c.DE.SetUint16(0xBEEF)

	assert.Equal(t, uint8(16), c.Step())
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, uint8(0xFF), bus.memory[0xFFFC])
	assert.Equal(t, uint8(0x12), bus.memory[0xFFFD])

	assert.Equal(t, uint8(12), c.Step())
	assert.Equal(t, uint8(0x12), c.A)
	assert.Equal(t, uint8(0xF0), c.F, "the low nibble of F is always zero")
	assert.Equal(t, uint16(0xFFFE), c.SP)

	c.Step()
	c.Step()
	assert.Equal(t, uint16(0xBEEF), c.HL.Uint16())
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestJump_Restart(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		t.Run(fmt.Sprintf("RST %02XH", vector), func(t *testing.T) {
			c, bus := newTestCPU(0xC7 + i<<3)

			assert.Equal(t, uint8(16), c.Step())
			assert.Equal(t, vector, c.PC)
			assert.Equal(t, uint16(0xFFFC), c.SP)
			assert.Equal(t, uint16(0x0101), bus.ReadWord(0xFFFC))
		})
	}
}

func TestJump_Unconditional(t *testing.T) {
	t.Run("JP a16", func(t *testing.T) {
		c, _ := newTestCPU(0xC3, 0x50, 0x01)
		assert.Equal(t, uint8(16), c.Step())
		assert.Equal(t, uint16(0x0150), c.PC)
	})
	t.Run("JP HL", func(t *testing.T) {
		c, _ := newTestCPU(0xE9)
		c.HL.SetUint16(0xC123)
		assert.Equal(t, uint8(4), c.Step())
		assert.Equal(t, uint16(0xC123), c.PC)
	})
	t.Run("JR wraps", func(t *testing.T) {
		c, bus := newTestCPU()
		c.PC = 0xFFFE
		bus.memory[0xFFFE] = 0x18
		bus.memory[0xFFFF] = 0x02
		assert.Equal(t, uint8(12), c.Step())
		assert.Equal(t, uint16(0x0002), c.PC)
	})
	t.Run("JR backwards", func(t *testing.T) {
		c, _ := newTestCPU(0x18, 0x80)
		c.Step()
		assert.Equal(t, uint16(0x0102-0x80), c.PC)
	})
}
