package gameboy

import (
	"io"

	"github.com/thelolagemann/gomeboy/internal/serial"
	"github.com/thelolagemann/gomeboy/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug logs every executed instruction at debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// NoBios starts execution at 0x0100 with the registers set to the values
// the DMG boot ROM leaves behind.
func NoBios() Opt {
	return func(gb *GameBoy) {
		gb.CPU.AF.SetUint16(0x01B0)
		gb.CPU.BC.SetUint16(0x0013)
		gb.CPU.DE.SetUint16(0x00D8)
		gb.CPU.HL.SetUint16(0x014D)
		gb.CPU.SP = 0xFFFE
		gb.CPU.PC = 0x0100
	}
}

// WithLogger sets the logger used by the Game Boy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithSerialDevice attaches a device to the serial port.
func WithSerialDevice(d serial.Device) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(d)
	}
}

// SerialDebugger copies every byte sent over the serial port to w. Test
// ROMs print their results this way.
func SerialDebugger(w io.Writer) Opt {
	return WithSerialDevice(serial.WriterDevice(w))
}
