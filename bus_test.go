package main

import (
	"testing"

	"github.com/matryer/is"
)

func expectTrap(t *testing.T, kind uint8, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		tr, ok := r.(trap)
		if !ok {
			t.Fatalf("expected trap, got %v", r)
		}
		if tr.kind != kind {
			t.Fatalf("got: %v, want kind %d", tr, kind)
		}
	}()
	fn()
}

func TestBusFrameBuffer(t *testing.T) {
	is := is.New(t)
	b := newBus()

	is.Equal(b.read16(vgaBase), blank)
	b.write16(vgaBase+2*81, cell('x', redOnBlack))
	is.Equal(b.vga.row(1)[1], byte('x'))
	is.Equal(b.read16(vgaBase+vgaSize-2), blank)
}

func TestBusFaults(t *testing.T) {
	b := newBus()
	expectTrap(t, FAULTMEM, func() { b.read16(vgaBase - 2) })
	expectTrap(t, FAULTMEM, func() { b.read16(vgaBase + vgaSize) })
	expectTrap(t, FAULTMEM, func() { b.write16(vgaBase+1, 0) })
	expectTrap(t, FAULTPORT, func() { b.inb(0x3f8) })
	expectTrap(t, FAULTPORT, func() { b.outb(0x80, 1) })
}

func TestCRTCRegisters(t *testing.T) {
	is := is.New(t)
	b := newBus()

	b.outb(crtcIndex, crtcCursorHigh)
	b.outb(crtcData, 0x07)
	b.outb(crtcIndex, crtcCursorLow)
	b.outb(crtcData, 0xcf)

	is.Equal(b.crtc.cursor(), 0x07cf)
	is.Equal(b.inb(crtcIndex), uint8(crtcCursorLow))
	is.Equal(b.inb(crtcData), uint8(0xcf))

	// unknown registers are ignored
	b.outb(crtcIndex, 0x40)
	b.outb(crtcData, 0x12)
	is.Equal(b.inb(crtcData), uint8(0xff))

	b.reset()
	is.Equal(b.crtc.cursor(), 0)
}

func TestTrapString(t *testing.T) {
	is := is.New(t)
	is.Equal(trap{FAULTMEM, 0xb8fa0}.String(), "trap: bad memory address b8fa0")
	is.Equal(trap{FAULTPORT, 0x3f8}.String(), "trap: bad port 03f8")
	is.Equal(trap{FAULTCELL, 2000}.String(), "trap: bad cell offset 2000")
}
