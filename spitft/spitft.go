// Package spitft implements the hardware sink for SPI-style TFT
// controllers speaking the command/data protocol: an address window is
// declared with column-set and row-set commands, then pixel data is
// streamed into RAM in row-major order.
//
// The package owns none of the physical transport. Pin setup, bus
// locking, reset timing and the panel's init sequence stay with the Bus
// implementation supplied by the caller.
package spitft

import (
	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/pixel"
)

// Bus is the command/data transport under the sink. BeginTransaction
// acquires the bus and asserts chip select; WriteCommand sends one byte
// with D/C low, WriteData with D/C high. Calls between Begin and End
// happen on a held bus.
type Bus interface {
	BeginTransaction()
	EndTransaction()
	WriteCommand(cmd byte)
	WriteData(p []byte)
}

// Config describes the panel geometry and the handful of registers the
// sink touches. Zero values select the conventional MIPI DCS opcodes;
// the concrete init sequence stays with the driver owning the Bus.
type Config struct {
	Width  int16 // panel width at rotation 0 (default 240)
	Height int16 // panel height at rotation 0 (default 320)

	// Panel RAM offsets at rotation 0; they swap with rotation parity.
	ColumnOffset int16
	RowOffset    int16

	Rotation gfx.Rotation

	// Staging block for pixel pushes, in pixels.
	BlockPixels int

	ColumnCmd   byte // default 0x2A (CASET)
	RowCmd      byte // default 0x2B (RASET)
	RAMWriteCmd byte // default 0x2C (RAMWR)

	InvertOnCmd  byte // default 0x21 (INVON)
	InvertOffCmd byte // default 0x20 (INVOFF)

	// MemAccessCmd, when nonzero, is sent with the per-rotation value
	// from MemAccess on every SetRotation (MADCTL-style).
	MemAccessCmd byte
	MemAccess    [4]byte
}

// Device is a gfx.Sink pushing pixels over a Bus.
type Device struct {
	bus  Bus
	span *gfx.SpanWriter
	cfg  Config
	rot  gfx.Rotation
}

// New builds a sink over bus. The bus must already be initialized and
// the panel out of reset.
func New(bus Bus, cfg Config) *Device {
	if cfg.Width <= 0 {
		cfg.Width = 240
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	if cfg.ColumnCmd == 0 {
		cfg.ColumnCmd = 0x2A
	}
	if cfg.RowCmd == 0 {
		cfg.RowCmd = 0x2B
	}
	if cfg.RAMWriteCmd == 0 {
		cfg.RAMWriteCmd = 0x2C
	}
	if cfg.InvertOnCmd == 0 {
		cfg.InvertOnCmd = 0x21
	}
	if cfg.InvertOffCmd == 0 {
		cfg.InvertOffCmd = 0x20
	}

	d := &Device{bus: bus, cfg: cfg}
	d.span = gfx.NewSpanWriter(busData{bus}, cfg.BlockPixels)
	d.SetRotation(cfg.Rotation)
	return d
}

// busData narrows the bus to the SpanWriter's data-only view.
type busData struct{ bus Bus }

func (b busData) WriteData(p []byte) { b.bus.WriteData(p) }

func (d *Device) Size() (w, h int16) {
	if d.rot.Odd() {
		return d.cfg.Height, d.cfg.Width
	}
	return d.cfg.Width, d.cfg.Height
}

func (d *Device) offsets() (col, row int16) {
	if d.rot.Odd() {
		return d.cfg.RowOffset, d.cfg.ColumnOffset
	}
	return d.cfg.ColumnOffset, d.cfg.RowOffset
}

func (d *Device) BeginWrite() { d.bus.BeginTransaction() }
func (d *Device) EndWrite()   { d.bus.EndTransaction() }

// SetWindow declares the target rectangle for the following pixel
// stream. Callers pass in-bounds, positive geometry; the coordinates go
// out as 16-bit big-endian inclusive ranges with panel offsets applied.
func (d *Device) SetWindow(x, y, w, h int16) {
	colOff, rowOff := d.offsets()
	x0 := uint16(x + colOff)
	x1 := uint16(x + w - 1 + colOff)
	y0 := uint16(y + rowOff)
	y1 := uint16(y + h - 1 + rowOff)

	d.bus.WriteCommand(d.cfg.ColumnCmd)
	d.bus.WriteData([]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)})
	d.bus.WriteCommand(d.cfg.RowCmd)
	d.bus.WriteData([]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)})
	d.bus.WriteCommand(d.cfg.RAMWriteCmd)
}

func (d *Device) WritePixel(x, y int16, c pixel.Color) {
	d.SetWindow(x, y, 1, 1)
	d.span.WriteSolid(c, 1)
}

func (d *Device) WriteSpan(colors []pixel.Color) { d.span.WriteSpan(colors) }

func (d *Device) WriteSolid(c pixel.Color, n int) { d.span.WriteSolid(c, n) }

// WriteRect implements the pre-clipped rectangle capability: one
// address window, one solid run.
func (d *Device) WriteRect(x, y, w, h int16, c pixel.Color) {
	d.SetWindow(x, y, w, h)
	d.span.WriteSolid(c, int(w)*int(h))
}

// WriteHLine implements the pre-clipped horizontal run capability.
func (d *Device) WriteHLine(x, y, w int16, c pixel.Color) {
	d.WriteRect(x, y, w, 1, c)
}

// WriteVLine implements the pre-clipped vertical run capability.
func (d *Device) WriteVLine(x, y, h int16, c pixel.Color) {
	d.WriteRect(x, y, 1, h, c)
}

// SetRotation reorients the logical coordinate space and, when the
// config names a memory-access register, reprograms the panel.
func (d *Device) SetRotation(r gfx.Rotation) {
	d.rot = r & 3
	if d.cfg.MemAccessCmd == 0 {
		return
	}
	d.bus.BeginTransaction()
	d.bus.WriteCommand(d.cfg.MemAccessCmd)
	d.bus.WriteData([]byte{d.cfg.MemAccess[d.rot]})
	d.bus.EndTransaction()
}

// Rotation returns the current orientation.
func (d *Device) Rotation() gfx.Rotation { return d.rot }

// SetInverted toggles panel color inversion.
func (d *Device) SetInverted(on bool) {
	cmd := d.cfg.InvertOffCmd
	if on {
		cmd = d.cfg.InvertOnCmd
	}
	d.bus.BeginTransaction()
	d.bus.WriteCommand(cmd)
	d.bus.EndTransaction()
}

// PushColor writes one pixel of color at the current RAM position
// inside its own transaction.
//
// Deprecated: kept for callers of the historical API; use a Device
// method or an open write with WriteSolid instead.
func (d *Device) PushColor(c pixel.Color) {
	d.bus.BeginTransaction()
	d.span.WriteSolid(c, 1)
	d.bus.EndTransaction()
}
