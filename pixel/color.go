// Package pixel defines the packed RGB565 color type shared by every
// sink and rasterizer in this module.
package pixel

import "image/color"

// Color is a packed 16-bit color: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Common TFT palette values.
const (
	Black       Color = 0x0000
	Navy        Color = 0x000F
	DarkGreen   Color = 0x03E0
	DarkCyan    Color = 0x03EF
	Maroon      Color = 0x7800
	Purple      Color = 0x780F
	Olive       Color = 0x7BE0
	LightGray   Color = 0xC618
	DarkGray    Color = 0x7BEF
	Blue        Color = 0x001F
	Green       Color = 0x07E0
	Cyan        Color = 0x07FF
	Red         Color = 0xF800
	Magenta     Color = 0xF81F
	Yellow      Color = 0xFFE0
	White       Color = 0xFFFF
	Orange      Color = 0xFD20
	GreenYellow Color = 0xAFE5
	Pink        Color = 0xFC18
)

// FromRGB packs three 8-bit channels into RGB565 by truncation.
func FromRGB(r, g, b uint8) Color {
	rr := Color(r>>3) & 0x1F
	gg := Color(g>>2) & 0x3F
	bb := Color(b>>3) & 0x1F
	return rr<<11 | gg<<5 | bb
}

// FromRGBA packs a color.RGBA, ignoring alpha.
func FromRGBA(c color.RGBA) Color {
	return FromRGB(c.R, c.G, c.B)
}

// RGB expands the packed value back to 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	rr := (uint16(c) >> 11) & 0x1F
	gg := (uint16(c) >> 5) & 0x3F
	bb := uint16(c) & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// BigEndian returns the two wire bytes in bus order (high byte first).
func (c Color) BigEndian() (hi, lo byte) {
	return byte(c >> 8), byte(c)
}
