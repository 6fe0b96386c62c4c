// Package canvas provides in-memory pixel sinks at 1, 8 and 16 bits
// per pixel. Each canvas owns a row-major buffer sized to its raw
// (pre-rotation) dimensions, allocated once at construction and
// zeroed. A canvas built with a non-positive dimension has no buffer
// and every operation on it is a silent no-op.
package canvas

import "github.com/qubicos/gfx"

// rawPoint maps logical (rotation-adjusted) coordinates onto the raw
// buffer grid.
func rawPoint(rot gfx.Rotation, x, y, rawW, rawH int16) (int16, int16) {
	switch rot & 3 {
	case 1:
		return rawW - 1 - y, x
	case 2:
		return rawW - 1 - x, rawH - 1 - y
	case 3:
		return y, rawH - 1 - x
	}
	return x, y
}

// logicalSize applies rotation parity to raw dimensions.
func logicalSize(rot gfx.Rotation, rawW, rawH int16) (int16, int16) {
	if rot.Odd() {
		return rawH, rawW
	}
	return rawW, rawH
}

// window tracks the cursor of the current address window.
type window struct {
	x, y, w int16
	cx, cy  int16
}

func (w *window) set(x, y, wid int16) {
	w.x, w.y, w.w = x, y, wid
	w.cx, w.cy = 0, 0
}

func (w *window) next() (x, y int16) {
	x, y = w.x+w.cx, w.y+w.cy
	w.cx++
	if w.cx >= w.w {
		w.cx = 0
		w.cy++
	}
	return x, y
}
