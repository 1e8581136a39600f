package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBus is a flat 64kB memory.
type testBus struct {
	memory [0x10000]uint8
}

func (b *testBus) Read(address uint16) uint8 { return b.memory[address] }

func (b *testBus) Write(address uint16, value uint8) { b.memory[address] = value }

func (b *testBus) ReadWord(address uint16) uint16 {
	return uint16(b.memory[address+1])<<8 | uint16(b.memory[address])
}

func (b *testBus) WriteWord(address uint16, value uint16) {
	b.memory[address] = uint8(value)
	b.memory[address+1] = uint8(value >> 8)
}

// newTestCPU returns a CPU with program loaded at 0x0100 and PC pointing
// at it.
func newTestCPU(program ...uint8) (*CPU, *testBus) {
	bus := &testBus{}
	copy(bus.memory[0x0100:], program)
	c := NewCPU(bus, nil)
	c.PC = 0x0100
	return c, bus
}

func TestCPU_Scenarios(t *testing.T) {
	t.Run("LD BC, d16", func(t *testing.T) {
		c, _ := newTestCPU(0x01, 0x34, 0x12)

		ticks := c.Step()

		assert.Equal(t, uint8(0x12), c.B)
		assert.Equal(t, uint8(0x34), c.C)
		assert.Equal(t, uint16(0x0103), c.PC)
		assert.Equal(t, uint8(12), ticks)
	})
	t.Run("INC B overflow", func(t *testing.T) {
		c, _ := newTestCPU(0x04)
		c.B = 0xFF
		c.SetFlag(FlagCarry, true)

		c.Step()

		assert.Equal(t, uint8(0x00), c.B)
		assert.True(t, c.Flag(FlagZero))
		assert.True(t, c.Flag(FlagHalfCarry))
		assert.False(t, c.Flag(FlagSubtract))
		assert.True(t, c.Flag(FlagCarry), "carry must be left alone")
	})
	t.Run("ADD A, B half carry", func(t *testing.T) {
		c, _ := newTestCPU(0x80)
		c.A, c.B = 0x0F, 0x01

		c.Step()

		assert.Equal(t, uint8(0x10), c.A)
		assert.True(t, c.Flag(FlagHalfCarry))
		assert.False(t, c.Flag(FlagZero))
		assert.False(t, c.Flag(FlagCarry))
	})
	t.Run("JR NZ not taken", func(t *testing.T) {
		c, _ := newTestCPU(0x20, 0x05)
		c.SetFlag(FlagZero, true)

		ticks := c.Step()

		assert.Equal(t, uint16(0x0102), c.PC)
		assert.Equal(t, uint8(8), ticks)
	})
	t.Run("CALL then RET", func(t *testing.T) {
		c, bus := newTestCPU(0xCD, 0x00, 0x40)
		bus.memory[0x4000] = 0xC9

		assert.Equal(t, uint8(24), c.Step())
		assert.Equal(t, uint16(0x4000), c.PC)
		assert.Equal(t, uint16(0xFFFC), c.SP)

		assert.Equal(t, uint8(16), c.Step())
		assert.Equal(t, uint16(0x0103), c.PC)
		assert.Equal(t, uint16(0xFFFE), c.SP)
	})
	t.Run("BIT 7, H", func(t *testing.T) {
		c, _ := newTestCPU(0xCB, 0x7C)
		c.H = 0x00
		c.SetFlag(FlagCarry, true)

		ticks := c.Step()

		assert.True(t, c.Flag(FlagZero))
		assert.False(t, c.Flag(FlagSubtract))
		assert.True(t, c.Flag(FlagHalfCarry))
		assert.True(t, c.Flag(FlagCarry))
		assert.Equal(t, uint8(0x00), c.H)
		assert.Equal(t, uint16(0x0102), c.PC)
		assert.Equal(t, uint8(8), ticks)
	})
}

func TestCPU_Halt(t *testing.T) {
	c, _ := newTestCPU(0x76, 0x00)

	c.Step()
	require.True(t, c.Halted())
	assert.False(t, c.Stopped())
	assert.Equal(t, uint16(0x0101), c.PC)

	// no instruction is fetched while halted
	for i := 0; i < 3; i++ {
		assert.Equal(t, uint8(TicksPerCycle), c.Step())
		assert.Equal(t, uint16(0x0101), c.PC)
	}

	c.Wake()
	assert.False(t, c.Halted())
	c.Step()
	assert.Equal(t, uint16(0x0102), c.PC)
}

func TestCPU_Stop(t *testing.T) {
	c, _ := newTestCPU(0x10, 0x00, 0x00)

	ticks := c.Step()

	assert.Equal(t, uint8(4), ticks)
	assert.True(t, c.Stopped())
	assert.True(t, c.Halted())
	assert.Equal(t, uint16(0x0102), c.PC, "the padding byte is consumed")

	c.Step()
	assert.Equal(t, uint16(0x0102), c.PC)

	c.Wake()
	assert.False(t, c.Stopped())
}

func TestCPU_ReservedOpcodes(t *testing.T) {
	for _, opcode := range reservedOpcodes {
		t.Run(fmt.Sprintf("0x%02X", opcode), func(t *testing.T) {
			c, bus := newTestCPU(opcode)
			c.A, c.F, c.B = 0x12, 0xF0, 0x34
			before := c.Registers
			memory := bus.memory

			ticks := c.Step()

			assert.Equal(t, uint8(4), ticks)
			assert.Equal(t, uint16(0x0101), c.PC)
			assert.Equal(t, before.A, c.A)
			assert.Equal(t, before.F, c.F)
			assert.Equal(t, before.B, c.B)
			assert.Equal(t, before.SP, c.SP)
			assert.Equal(t, memory, bus.memory)
			assert.False(t, c.Halted())
		})
	}
}

func TestCPU_InterruptMasterEnable(t *testing.T) {
	c, _ := newTestCPU(0xFB, 0xF3, 0xD9)
	c.SP = 0xFFFC
	c.bus.WriteWord(0xFFFC, 0x1234)
	require.False(t, c.IME())

	c.Step()
	assert.True(t, c.IME(), "EI")
	assert.True(t, c.Interrupts().IME)

	c.Step()
	assert.False(t, c.IME(), "DI")

	ticks := c.Step()
	assert.True(t, c.IME(), "RETI")
	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint8(16), ticks)
}

// recordingLogger counts the lines logged at debug level.
type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Infof(string, ...interface{})  {}
func (r *recordingLogger) Errorf(string, ...interface{}) {}
func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestCPU_Debug(t *testing.T) {
	c, _ := newTestCPU(0x3E, 0x42, 0x00, 0x01, 0x34, 0x12)
	logger := &recordingLogger{}
	c.Log = logger

	c.Step()
	assert.Empty(t, logger.lines)

	c.Debug = true
	c.Step()
	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "0102")
	assert.Contains(t, logger.lines[0], "NOP")
	assert.Contains(t, logger.lines[0], "A:42")

	c.Step()
	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[1], "0103 LD BC, $1234")
	assert.Contains(t, logger.lines[1], "B:12 C:34")
	assert.Contains(t, logger.lines[1], "(12 ticks)")
}
