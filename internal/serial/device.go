package serial

import "io"

// Device is a device that can be attached to the Controller. A transfer
// exchanges a whole byte: the Controller hands its outgoing byte to
// Receive and shifts in whatever Send returns.
type Device interface {
	Receive(uint8)
	Send() uint8
}

// nullDevice is an implementation of Device that
// simply returns 0xFF on Send and does nothing on
// Receive. This is most commonly used for when no
// device is attached to the Controller.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(uint8) {}

// Send always returns 0xFF, as the line is pulled high.
func (n nullDevice) Send() uint8 { return 0xFF }

// writerDevice forwards every received byte to an io.Writer. Test ROMs
// report their results this way.
type writerDevice struct {
	nullDevice
	w io.Writer
}

// WriterDevice returns a Device that writes every transferred byte to w.
// Write errors are ignored, the transfer completes regardless.
func WriterDevice(w io.Writer) Device {
	return &writerDevice{w: w}
}

// Receive writes b to the underlying writer.
func (d *writerDevice) Receive(b uint8) {
	_, _ = d.w.Write([]byte{b})
}
