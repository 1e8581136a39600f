// Package serial provides a minimal serial port. Transfers clocked by the
// Game Boy complete as soon as they are requested.
package serial

import (
	"fmt"

	"github.com/thelolagemann/gomeboy/internal/interrupts"
	"github.com/thelolagemann/gomeboy/internal/types"
	"github.com/thelolagemann/gomeboy/pkg/bits"
)

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
//
// Before a transfer, data holds the next byte to be sent (types.SB). After
// the transfer it holds the byte received from the attached device.
type Controller struct {
	data            uint8 // types.SB
	InternalClock   bool  // if true, this controller is the master.
	TransferRequest bool  // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.

	irq *interrupts.Service
}

// NewController creates a new Controller that requests the serial
// interrupt on irq when a transfer completes.
//
// By default, the Controller is attached to a nullDevice, which acts as if
// there is no device attached. This is the same as if the device is not
// plugged in. If you want to attach a device, use the Controller.Attach method.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
	}
}

// Attach attaches a Device to the Controller. A nil Device detaches the
// current one.
func (c *Controller) Attach(d Device) {
	if d == nil {
		d = nullDevice{}
	}
	c.AttachedDevice = d
}

// Read returns the value of the SB or SC register.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.SB:
		return c.data
	case types.SC:
		value := uint8(0x7E) // bits 1-6 are always set
		value = bits.Assign(value, 7, c.TransferRequest)
		value = bits.Assign(value, 0, c.InternalClock)
		return value
	}
	panic(fmt.Sprintf("serial: illegal read from address %04X", address))
}

// Write sets the value of the SB or SC register. Writing SC with both the
// transfer start and internal clock bits set performs the transfer.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.InternalClock = bits.Test(value, 0)
		c.TransferRequest = bits.Test(value, 7)
		if c.TransferRequest && c.InternalClock {
			c.transfer()
		}
	default:
		panic(fmt.Sprintf("serial: illegal write to address %04X", address))
	}
}

// transfer exchanges the data register with the attached device,
// clears the transfer request and raises the serial interrupt.
func (c *Controller) transfer() {
	c.AttachedDevice.Receive(c.data)
	c.data = c.AttachedDevice.Send()

	c.TransferRequest = false
	if c.irq != nil {
		c.irq.Request(interrupts.SerialFlag)
	}
}
