package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/types"
)

func TestController_Transfer(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	var out bytes.Buffer
	c.Attach(WriterDevice(&out))

	for _, b := range []byte("Passed") {
		c.Write(types.SB, b)
		c.Write(types.SC, 0x81)

		assert.Equal(t, uint8(0xFF), c.Read(types.SB))
		assert.Equal(t, uint8(0x7F), c.Read(types.SC), "transfer complete")
	}

	assert.Equal(t, "Passed", out.String())
	assert.Equal(t, interrupts.SerialFlag, irq.Flag)
}

func TestController_ExternalClock(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq)
	var out bytes.Buffer
	c.Attach(WriterDevice(&out))

	c.Write(types.SB, 'x')
	c.Write(types.SC, 0x80)

	assert.Empty(t, out.String(), "no clock, no transfer")
	assert.Equal(t, uint8('x'), c.Read(types.SB))
	assert.Equal(t, uint8(0xFE), c.Read(types.SC))
	assert.Zero(t, irq.Flag)
}

func TestController_NoDevice(t *testing.T) {
	c := NewController(nil)
	c.Attach(nil)

	c.Write(types.SB, 0x42)
	c.Write(types.SC, 0x81)
	assert.Equal(t, uint8(0xFF), c.Read(types.SB))
}

func TestController_IllegalAccess(t *testing.T) {
	c := NewController(nil)
	assert.Panics(t, func() { c.Read(0xFF03) })
	assert.Panics(t, func() { c.Write(0xFF00, 0) })
}
