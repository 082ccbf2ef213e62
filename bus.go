package tm1640

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// bus bit-bangs the TM1640 two-wire protocol.
//
// Data is sampled on the rising edge of clk and may only change while clk is
// low. A transaction starts when din falls while clk is high and ends when
// din rises while clk is high.
//
// The first pin error is kept and turns every following call into a no-op
// until flush reports it.
type bus struct {
	clk, din gpio.PinOut

	half    time.Duration // Setup and hold time of each bit
	quarter time.Duration // Framing delay

	delay func(time.Duration)
	err   error
}

// set drives p to l.
func (b *bus) set(p gpio.PinOut, l gpio.Level) {
	if b.err != nil {
		return
	}
	if err := p.Out(l); err != nil {
		b.err = fmt.Errorf("tm1640: failed to drive %s %s: %w", p, l, err)
	}
}

func (b *bus) wait(d time.Duration) {
	if b.err != nil {
		return
	}
	b.delay(d)
}

// sendBit clocks one bit out, data stable before the rising edge.
func (b *bus) sendBit(bit bool) {
	b.set(b.clk, gpio.Low)
	b.set(b.din, gpio.Level(bit))
	b.wait(b.half)
	b.set(b.clk, gpio.High)
	b.wait(b.half)
}

// sendByte clocks v out, most significant bit first.
func (b *bus) sendByte(v byte) {
	for i := 7; i >= 0; i-- {
		b.sendBit(v&(1<<uint(i)) != 0)
	}
}

// start signals the beginning of a transaction.
func (b *bus) start() {
	b.set(b.clk, gpio.Low)
	b.wait(b.quarter)
	b.set(b.clk, gpio.High)
	b.set(b.din, gpio.High)
	b.set(b.din, gpio.Low)
}

// end signals the end of a transaction and leaves both lines high.
func (b *bus) end() {
	b.set(b.clk, gpio.Low)
	b.wait(b.half)
	b.set(b.din, gpio.Low)
	b.set(b.clk, gpio.High)
	b.wait(b.quarter)
	b.set(b.din, gpio.High)
}

// transaction sends cmd and its optional payload framed by start and end.
func (b *bus) transaction(cmd byte, payload ...byte) {
	b.start()
	b.sendByte(cmd)
	for _, v := range payload {
		b.sendByte(v)
	}
	b.end()
}

// flush returns and resets the pending pin error.
func (b *bus) flush() error {
	err := b.err
	b.err = nil
	return err
}

// writeFrame writes data to display RAM from address 0 and leaves the display
// on. Empty or oversized frames are dropped without touching the lines.
func (b *bus) writeFrame(data []byte) error {
	if len(data) == 0 || len(data) > Width {
		return nil
	}
	b.transaction(cmdAutoIncrement)
	b.transaction(cmdAddress, data...)
	b.transaction(cmdDisplayOn)
	return b.flush()
}
