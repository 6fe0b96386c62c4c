// Command gfxdemo renders the primitive set into an offscreen canvas
// and presents it in a desktop window.
package main

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/qubicos/gfx"
	"github.com/qubicos/gfx/canvas"
	"github.com/qubicos/gfx/pixel"
	"github.com/qubicos/gfx/sim"
	"github.com/qubicos/gfx/widget"
)

const (
	screenW = 320
	screenH = 240
)

func main() {
	c := canvas.New16(screenW, screenH)
	d := gfx.NewDevice(c)

	drawScene(d)

	var btn widget.Button
	btn.Init(d, screenW-50, screenH-24, 80, 32, pixel.White, pixel.Blue, pixel.White, "DEMO", 1)
	btn.Draw(false)

	frame := 0
	err := sim.Run(c, sim.Config{
		Title: "gfxdemo",
		Scale: 2,
		OnFrame: func() error {
			// Sweep a line across the top band.
			x := int16(frame % screenW)
			d.DrawVLine(x-1, 0, 40, pixel.Black)
			hue := float64(frame % 360)
			r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
			d.DrawVLine(x, 0, 40, pixel.FromRGB(r, g, b))

			btn.Press(frame%120 < 60)
			if btn.JustPressed() {
				btn.Draw(true)
			} else if btn.JustReleased() {
				btn.Draw(false)
			}
			frame++
			return nil
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "gfxdemo:", err)
		os.Exit(1)
	}
}

func drawScene(d *gfx.Device) {
	d.FillScreen(pixel.Black)

	// Hue gradient band.
	for x := int16(0); x < screenW; x++ {
		hue := float64(x) / screenW * 360
		r, g, b := colorful.Hsv(hue, 1, 0.4).RGB255()
		d.DrawVLine(x, 44, 20, pixel.FromRGB(r, g, b))
	}

	// Shapes row.
	d.DrawRect(10, 80, 60, 50, pixel.White)
	d.FillRect(14, 84, 52, 42, pixel.Navy)
	d.DrawCircle(110, 105, 25, pixel.Yellow)
	d.FillCircle(110, 105, 18, pixel.Red)
	d.DrawRoundRect(150, 80, 60, 50, 12, pixel.Cyan)
	d.FillRoundRect(156, 86, 48, 38, 8, pixel.DarkCyan)
	d.DrawTriangle(230, 128, 260, 82, 290, 128, pixel.Green)
	d.FillTriangle(238, 124, 260, 92, 282, 124, pixel.DarkGreen)
	d.DrawLine(10, 140, 310, 150, pixel.Magenta)

	// Classic font, with and without background.
	d.SetFont(nil)
	d.SetCursor(10, 160)
	d.SetTextSize(2)
	d.SetTextColor(pixel.White)
	d.Println("gfx primitives")
	d.SetTextSize(1)
	d.SetTextColorBG(pixel.Black, pixel.Yellow)
	d.Printf("%dx%d RGB565", screenW, screenH)
	d.SetTextColor(pixel.LightGray)

	// Proportional text rendered through the Displayer bridge.
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 10, 230, "proportional via tinyfont", pixel.GreenYellow.RGBA())

	// Transparent 1-bit blit: a 16x8 arrow.
	arrow := []byte{
		0x01, 0x00,
		0x03, 0x00,
		0x07, 0xFE,
		0x0F, 0xFE,
		0x0F, 0xFE,
		0x07, 0xFE,
		0x03, 0x00,
		0x01, 0x00,
	}
	d.DrawBitmap(10, 200, arrow, 16, 8, pixel.Orange)
}
