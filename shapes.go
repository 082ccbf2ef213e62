package tm1640

import (
	"image"

	"periph.io/x/devices/v3/tm1640/image1bit"
)

// SetLED turns the LED at row (0-7) and col (0-15) on or off and updates the
// display. Coordinates outside the matrix are ignored.
func (d *Dev) SetLED(row, col int, on bool) error {
	if d.halted {
		return errHalted
	}
	if !(image.Point{X: col, Y: row}.In(d.rect)) {
		return nil
	}
	d.buffer.SetBit(col, row, image1bit.Bit(on))
	return d.show()
}

// DrawRect sets every LED of the w×h rectangle whose top left corner is at
// column x and row y. The rectangle is clipped to the matrix; a zero or
// negative size draws nothing.
func (d *Dev) DrawRect(x, y, w, h int, on bool) error {
	if d.halted {
		return errHalted
	}
	x0, x1 := clip(x, w, Width)
	y0, y1 := clip(y, h, Height)
	for col := x0; col < x1; col++ {
		for row := y0; row < y1; row++ {
			if err := d.SetLED(row, col, on); err != nil {
				return err
			}
		}
	}
	return d.show()
}

// DrawLine lights a horizontal or vertical line between two points, both
// ends included. Diagonal lines are not supported and leave the matrix
// unchanged.
func (d *Dev) DrawLine(startRow, startCol, endRow, endCol int) error {
	if d.halted {
		return errHalted
	}
	switch {
	case startRow == endRow:
		for col := max(min(startCol, endCol), 0); col <= max(startCol, endCol) && col < Width; col++ {
			if err := d.SetLED(startRow, col, true); err != nil {
				return err
			}
		}
	case startCol == endCol:
		for row := max(min(startRow, endRow), 0); row <= max(startRow, endRow) && row < Height; row++ {
			if err := d.SetLED(row, startCol, true); err != nil {
				return err
			}
		}
	}
	return d.show()
}

// clip returns the part [lo, hi) of the span of n cells from start that lies
// within [0, limit). It never computes start+n, which may overflow.
func clip(start, n, limit int) (lo, hi int) {
	if start < 0 {
		n += start
		start = 0
	}
	if n <= 0 || start >= limit {
		return 0, 0
	}
	return start, start + min(n, limit-start)
}
