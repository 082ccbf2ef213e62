// Package image1bit provides a 1-bit image format matching the TM1640 display RAM.
//
// The TM1640 stores one byte per grid column. Bit i of a column byte drives
// row i, so row 0 is the least significant bit.
// This package provides the Bit color type and VerticalLSB image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a single LED state.
type Bit bool

const (
	// On is a lit LED.
	On Bit = true
	// Off is a dark LED.
	Off Bit = false
)

// RGBA converts the Bit color to standard RGBA, On being white.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luminance weights as image/color.GrayModel, lit above half scale.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds one column of 8 pixels.
// Bit 0 is the top pixel of the column, bit 7 the bottom one.
type VerticalLSB struct {
	Pix  []byte          // One byte per column
	Rect image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must not exceed 8 (one byte per column).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h > 8 {
		panic("image1bit: height must be at most 8")
	}
	return &VerticalLSB{
		Pix:  make([]byte, w),
		Rect: r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y). Points outside the bounds are
// ignored.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Clear turns every pixel off.
func (p *VerticalLSB) Clear() {
	clear(p.Pix)
}

// Snapshot returns a copy of the column bytes.
func (p *VerticalLSB) Snapshot() []byte {
	out := make([]byte, len(p.Pix))
	copy(out, p.Pix)
	return out
}

// pixOffset returns the column byte offset and bit mask for the pixel at (x, y).
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	offset = x - p.Rect.Min.X
	mask = 1 << uint(y-p.Rect.Min.Y)
	return
}
