// Package tm1640 controls an 8x16 LED matrix driven by a TM1640 via two GPIO lines.
//
// The TM1640 is an LED driver with 16 grid outputs of 8 segments each. On
// common 8×16 matrix modules every grid output drives one column, so the
// display RAM is 16 bytes, one per column, bit i lighting row i.
// This driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16 columns × 8 rows, monochrome
// - Two-wire write-only serial link (CLK, DIN), no acknowledge
// - Whole-frame updates from address 0 with auto-increment
// - Software text scrolling with a built-in 5×8 font
//
// # Hardware Connection
//
// Connect the matrix module to any two GPIO outputs:
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 3.3V (or 5V depending on module)
//	SCK/CLK    → GPIO (clock)
//	DIN        → GPIO (data)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/tm1640"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Get the clock and data GPIO pins
//		clk := gpioreg.ByName("GPIO23")
//		din := gpioreg.ByName("GPIO24")
//
//		// Create device
//		dev, _ := tm1640.New(clk, din, nil)
//		defer dev.Halt()
//
//		// Light a few LEDs
//		dev.SetLED(0, 0, true)
//		dev.DrawLine(7, 0, 7, 15)
//		dev.DrawRect(6, 2, 4, 3, true)
//
//		// Scroll a message to the left, 150ms per column
//		dev.ScrollText("HELLO 123", 150*time.Millisecond, tm1640.ScrollLeft)
//	}
//
// # Coordinates
//
// Rows are numbered 0-7 from the top and columns 0-15 from the left. Shape
// primitives take (row, col) pairs, except DrawRect which takes x (column)
// and y (row) like image.Rectangle. Points outside the matrix are silently
// clipped so that drawing loops need no bounds checks.
//
// # Drawing Modes
//
// Every call that changes the framebuffer pushes the whole frame, since the
// TM1640 only takes writes starting at address 0.
//
// ## Raw Frames
//
// Write column bytes directly:
//
//	dev.Write([]byte{0xFF, 0x81, 0x81, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
//
// ## Images
//
// Use Draw with any image.Image; colors are converted through
// image1bit.BitModel, bright pixels being lit:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// ## TinyGo Libraries
//
// Displayer returns an adapter implementing tinygo.org/x/drivers.Displayer,
// buffering SetPixel calls until Display is called.
//
// # Text Scrolling
//
// ScrollText builds the message bitmap (16 blank columns, the glyphs
// separated by one blank column, 16 blank columns) and slides a 16-column
// window over it, blocking for the whole animation:
//
//	dev.ScrollText("HI!", 100*time.Millisecond, tm1640.ScrollRight)
//
// The frame delay is clamped to 50ms-1s. Fonts are held in font.Table values;
// see the font package to author your own.
//
// # Timing
//
// The default bit clock is 250kHz: data is set up 2μs before each rising
// clock edge and held 2μs after it. A frame is three transactions of 1, 17
// and 1 bytes. The bit waits are microseconds long, shorter than time.Sleep
// can honour, so by default they busy-wait. Opts.Delay replaces that wait and
// Opts.Sleep replaces the time.Sleep between scroll frames, which lets tests
// run without real delays.
//
// Dev.Init repeats the power-on sequence, for a display that was power cycled
// after New.
//
// # Datasheet
//
// For command descriptions and timing information, see the TM1640 datasheet
// published by Titan Micro Electronics.
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package tm1640
