// Package sim hosts a Canvas16 in a desktop window so rendering code
// can run and be eyeballed without display hardware.
package sim

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/qubicos/gfx/canvas"
	"github.com/qubicos/gfx/internal/buildinfo"
	"github.com/qubicos/gfx/pixel"
)

// Config controls the window. Zero values are usable defaults.
type Config struct {
	// Title of the window; the build identifier is appended.
	Title string

	// Scale is the integer window magnification (default 2).
	Scale int

	// OnFrame, when set, runs once per tick before the canvas is
	// presented. Returning an error closes the window and surfaces the
	// error from Run.
	OnFrame func() error
}

// Run opens a window presenting c at 60 ticks per second and blocks
// until the window closes.
func Run(c *canvas.Canvas16, cfg Config) error {
	w, h := c.RawSize()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 2
	}
	title := cfg.Title
	if title == "" {
		title = "gfx"
	}

	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(w)*scale, int(h)*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{c: c, w: int(w), h: int(h), onFrame: cfg.OnFrame})
}

type game struct {
	c       *canvas.Canvas16
	w, h    int
	img     *image.RGBA
	fb      *ebiten.Image
	onFrame func() error
}

func (g *game) Update() error {
	if g.onFrame != nil {
		return g.onFrame()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.h))
		g.fb = ebiten.NewImage(g.w, g.h)
	}

	src := g.c.Buffer()
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		p := pixel.Color(uint16(src[i]) | uint16(src[i+1])<<8)
		r, gg, b := p.RGB()
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fb.WritePixels(g.img.Pix)
	screen.DrawImage(g.fb, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
