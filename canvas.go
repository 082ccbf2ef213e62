package tm1640

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Canvas exposes the display as a TinyGo drivers.Displayer, so that
// tinygo.org/x/tinyfont and similar libraries can render into it.
type Canvas struct {
	d *Dev
}

var _ drivers.Displayer = (*Canvas)(nil)

// Displayer returns a Canvas drawing into the framebuffer of d.
func (d *Dev) Displayer() *Canvas {
	return &Canvas{d: d}
}

// Size returns the display size in pixels.
func (c *Canvas) Size() (x, y int16) {
	return Width, Height
}

// SetPixel updates the framebuffer only; call Display to show it.
// Pixels outside the display are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.d.buffer.Set(int(x), int(y), col)
}

// Display pushes the framebuffer to the display.
func (c *Canvas) Display() error {
	if c.d.halted {
		return errHalted
	}
	return c.d.show()
}
