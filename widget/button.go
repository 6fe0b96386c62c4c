// Package widget carries small drawn controls built on the rasterizer.
package widget

import (
	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/pixel"
)

// Button is a drawn push button: a filled, outlined round-rect with a
// centered classic-font label, plus debounced press-state tracking fed
// by the caller's input source.
type Button struct {
	dev      *gfx.Device
	x, y     int16
	w, h     int16
	outline  pixel.Color
	fill     pixel.Color
	text     pixel.Color
	label    string
	textSize uint8

	curr, last bool
}

// Init positions the button by its center point.
func (b *Button) Init(dev *gfx.Device, cx, cy, w, h int16, outline, fill, text pixel.Color, label string, textSize uint8) {
	b.InitUL(dev, cx-w/2, cy-h/2, w, h, outline, fill, text, label, textSize)
}

// InitUL positions the button by its upper-left corner.
func (b *Button) InitUL(dev *gfx.Device, x, y, w, h int16, outline, fill, text pixel.Color, label string, textSize uint8) {
	b.dev = dev
	b.x, b.y = x, y
	b.w, b.h = w, h
	b.outline, b.fill, b.text = outline, fill, text
	b.label = label
	b.textSize = textSize
	if b.textSize < 1 {
		b.textSize = 1
	}
}

// Draw renders the button; inverted swaps fill and label colors for
// pressed feedback.
func (b *Button) Draw(inverted bool) {
	if b.dev == nil {
		return
	}
	fill, text := b.fill, b.text
	if inverted {
		fill, text = b.text, b.fill
	}

	r := min16(b.w, b.h) / 4
	b.dev.FillRoundRect(b.x, b.y, b.w, b.h, r, fill)
	b.dev.DrawRoundRect(b.x, b.y, b.w, b.h, r, b.outline)

	ts := int16(b.textSize)
	b.dev.SetCursor(b.x+b.w/2-int16(len(b.label))*3*ts, b.y+b.h/2-4*ts)
	b.dev.SetTextColor(text)
	b.dev.SetTextSize(b.textSize)
	b.dev.WriteString(b.label)
}

// Contains reports whether (x, y) falls inside the button.
func (b *Button) Contains(x, y int16) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// Press records the current physical state; call once per poll.
func (b *Button) Press(p bool) {
	b.last = b.curr
	b.curr = p
}

// Pressed reports the state recorded by the latest Press.
func (b *Button) Pressed() bool { return b.curr }

// JustPressed reports a release-to-press edge on the latest Press.
func (b *Button) JustPressed() bool { return b.curr && !b.last }

// JustReleased reports a press-to-release edge on the latest Press.
func (b *Button) JustReleased() bool { return !b.curr && b.last }

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}
