// Package tm1640 controls an 8x16 LED matrix driven by a TM1640 via two GPIO lines.
//
// The TM1640 has no acknowledge line: the link is write-only, so wiring or
// timing faults cannot be detected. Only errors reported by the GPIO pins
// themselves are returned.
//
// See the examples for how to use this package.
package tm1640

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/tm1640/font"
	"periph.io/x/devices/v3/tm1640/image1bit"
)

// Display geometry. Each of the Width columns is one byte of display RAM.
const (
	Width  = 16
	Height = 8
)

const (
	// DefaultFrequency is the bit clock used when Opts.Freq is zero.
	DefaultFrequency = 250 * physic.KiloHertz
	// MaxFrequency is the fastest bit clock the TM1640 accepts.
	MaxFrequency = physic.MegaHertz
)

// Controller commands.
const (
	cmdAutoIncrement byte = 0x40 // Data command: write, auto-increment address
	cmdAddress       byte = 0xC0 // Address command: start at address 0
	cmdDisplayOn     byte = 0x88 // Display control: on, default brightness
)

var errHalted = errors.New("tm1640: halted")

// Opts is the configuration for the TM1640 display.
type Opts struct {
	// Bit clock frequency (default: 250kHz, must be ≤1MHz)
	Freq physic.Frequency

	// Sleep blocks between scroll frames (default: time.Sleep).
	Sleep func(time.Duration)

	// Delay waits out the microsecond bit timings (default: a busy-wait, as
	// time.Sleep overshoots such short delays by tens of microseconds).
	Delay func(time.Duration)

	// Font used by ScrollText (default: font.Default()).
	Font *font.Table
}

// Dev is the device handle for the TM1640 LED matrix.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	bus bus

	// Frame delay of ScrollText
	sleep func(time.Duration)

	// Text rendering
	font *font.Table

	// Display geometry
	rect image.Rectangle

	// Current frame, one byte per column
	buffer *image1bit.VerticalLSB

	// State
	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// New creates a new TM1640 device bit-banged over the clk and din pins.
//
// Both lines are driven high as idle level, the display is switched on and
// its RAM cleared.
//
// opts can be nil to use defaults.
func New(clk, din gpio.PinOut, opts *Opts) (*Dev, error) {
	if clk == nil || din == nil {
		return nil, errors.New("tm1640: clock and data pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	freq := opts.Freq
	if freq == 0 {
		freq = DefaultFrequency
	}
	if freq < 0 || freq > MaxFrequency {
		return nil, fmt.Errorf("tm1640: clock frequency %s out of range (0, %s]", freq, MaxFrequency)
	}

	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	delay := opts.Delay
	if delay == nil {
		delay = busyWait
	}
	f := opts.Font
	if f == nil {
		f = font.Default()
	}

	period := freq.Period()
	rect := image.Rect(0, 0, Width, Height)
	d := &Dev{
		bus: bus{
			clk:     clk,
			din:     din,
			half:    period / 2,
			quarter: period / 4,
			delay:   delay,
		},
		sleep:  sleep,
		font:   f,
		rect:   rect,
		buffer: image1bit.NewVerticalLSB(rect),
	}

	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Init idles the lines, turns the display on and clears its RAM and the
// framebuffer. New calls it; call it again to recover a display that lost
// power or state.
func (d *Dev) Init() error {
	if d.halted {
		return errHalted
	}
	d.bus.set(d.bus.din, gpio.High)
	d.bus.set(d.bus.clk, gpio.High)
	d.bus.transaction(cmdDisplayOn)
	if err := d.bus.flush(); err != nil {
		return err
	}
	d.buffer.Clear()
	return d.show()
}

// busyWait spins until d has elapsed.
func busyWait(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}

// show pushes the whole framebuffer to the display.
func (d *Dev) show() error {
	return d.bus.writeFrame(d.buffer.Pix)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Snapshot returns a copy of the current frame, one byte per column with bit
// i set when row i is lit.
func (d *Dev) Snapshot() []byte {
	return d.buffer.Snapshot()
}

// Write writes a raw frame of Width column bytes to the display.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer.Pix) {
		return 0, errors.New("tm1640: invalid buffer size")
	}
	copy(d.buffer.Pix, pixels)
	if err := d.show(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display.
// The dst rectangle specifies the destination region on the display; pixels
// outside of it keep their state. The src image is positioned at src point sp
// within the destination and converted through BitModel.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.buffer, dst, src, sp, draw.Src)
	return d.show()
}

// Clear turns every LED off.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	d.buffer.Clear()
	return d.show()
}

// Halt blanks the display.
// After calling Halt, every drawing operation fails. The TM1640 keeps
// scanning its RAM, so the display is cleared rather than switched off.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	d.buffer.Clear()
	return d.show()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm1640.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
