package interrupts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func TestService_Registers(t *testing.T) {
	s := NewService()
	assert.Equal(t, uint8(0xE0), s.Read(types.IF))
	assert.Equal(t, uint8(0x00), s.Read(types.IE))

	s.Write(types.IF, 0xFF)
	assert.Equal(t, uint8(0x1F), s.Flag)
	assert.Equal(t, uint8(0xFF), s.Read(types.IF))

	s.Write(types.IE, 0xFF)
	assert.Equal(t, uint8(0xFF), s.Read(types.IE))

	assert.Panics(t, func() { s.Read(0xFF10) })
	assert.Panics(t, func() { s.Write(0xFF10, 0) })
}

func TestService_HasInterrupts(t *testing.T) {
	s := NewService()
	assert.False(t, s.HasInterrupts())

	s.Request(TimerFlag)
	assert.False(t, s.HasInterrupts(), "requested but not enabled")

	s.Enable = TimerFlag | VBlankFlag
	assert.True(t, s.HasInterrupts())
	assert.False(t, s.IME, "pending interrupts do not touch IME")

	s.Write(types.IF, 0)
	assert.False(t, s.HasInterrupts())
}
