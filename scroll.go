package tm1640

import (
	"strings"
	"time"
)

// Direction selects which way ScrollText moves the message.
type Direction int

const (
	// ScrollLeft moves the message toward column 0.
	ScrollLeft Direction = 0
	// ScrollRight moves the message toward column 15.
	ScrollRight Direction = 1
)

func (dir Direction) String() string {
	switch dir {
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	}
	return "unknown"
}

// Frame delay bounds accepted by ScrollText.
const (
	MinScrollSpeed = 50 * time.Millisecond
	MaxScrollSpeed = time.Second
)

// ScrollText scrolls text across the display, waiting speed between frames,
// and returns once the message has left the display.
//
// Text is rendered upper case; characters missing from the font are blank.
// speed is clamped to [MinScrollSpeed, MaxScrollSpeed]. An unknown dir does
// nothing. The call blocks for the whole animation.
func (d *Dev) ScrollText(text string, speed time.Duration, dir Direction) error {
	if d.halted {
		return errHalted
	}
	speed = min(max(speed, MinScrollSpeed), MaxScrollSpeed)

	bitmap := d.messageBitmap(text)
	for _, start := range scrollStarts(len(bitmap), dir) {
		d.showWindow(bitmap, start)
		if err := d.show(); err != nil {
			return err
		}
		d.sleep(speed)
	}
	return nil
}

// MessageWidth returns the number of columns text occupies once padded for
// scrolling: Width blank columns on each side and one blank column between
// characters.
func (d *Dev) MessageWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 2 * Width
	}
	return 2*Width + n*(d.font.Width()+1) - 1
}

// messageBitmap renders text into column bytes padded with Width blank
// columns on both ends.
func (d *Dev) messageBitmap(text string) []byte {
	bitmap := make([]byte, Width, d.MessageWidth(text))
	for i, r := range []rune(strings.ToUpper(text)) {
		if i > 0 {
			bitmap = append(bitmap, 0)
		}
		bitmap = d.font.AppendGlyph(bitmap, r)
	}
	return append(bitmap, make([]byte, Width)...)
}

// scrollStarts returns the window offsets to show, in order, for a bitmap of
// the given width.
func scrollStarts(width int, dir Direction) []int {
	maxStart := width - Width
	var starts []int
	switch dir {
	case ScrollLeft:
		for s := 0; s <= maxStart; s++ {
			starts = append(starts, s)
		}
	case ScrollRight:
		for s := maxStart; s >= -Width; s-- {
			starts = append(starts, s)
		}
	}
	return starts
}

// showWindow copies the Width columns of bitmap starting at start into the
// framebuffer, columns outside bitmap being blank.
func (d *Dev) showWindow(bitmap []byte, start int) {
	for c := range d.buffer.Pix {
		m := start + c
		if m >= 0 && m < len(bitmap) {
			d.buffer.Pix[c] = bitmap[m]
		} else {
			d.buffer.Pix[c] = 0
		}
	}
}
