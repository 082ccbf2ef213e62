package tm1640

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanvas(t *testing.T) {
	dev, dec := newTestDev(t)
	dec.reset()
	c := dev.Displayer()

	if x, y := c.Size(); x != Width || y != Height {
		t.Errorf("Size() = (%d, %d), want (%d, %d)", x, y, Width, Height)
	}

	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	c.SetPixel(0, 0, white)
	c.SetPixel(15, 7, white)
	c.SetPixel(16, 0, white)
	c.SetPixel(-1, 3, white)
	c.SetPixel(4, 4, color.RGBA{0x10, 0x10, 0x10, 0xFF})

	if len(dec.txs) != 0 {
		t.Fatalf("SetPixel sent %d transactions before Display", len(dec.txs))
	}

	if err := c.Display(); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	want := allOff()
	want[0] = 0x01
	want[15] = 0x80
	if diff := cmp.Diff([][]byte{want}, dec.frames(t)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}

	c.SetPixel(0, 0, color.RGBA{0, 0, 0, 0xFF})
	if dev.Snapshot()[0] != 0 {
		t.Error("SetPixel(black) did not turn the LED off")
	}
}
