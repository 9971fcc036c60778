package main

import (
	"fmt"
	"io"
)

// addr is a physical memory address.
type addr uint32

// port is an x86 I/O port number.
type port uint16

// klog receives device diagnostics. It never reaches the emulated screen.
var klog io.Writer = io.Discard

// Bus connects the frame buffer and the port mapped devices.
type Bus struct {
	vga  VGA
	crtc CRTC
	kbd  PS2
}

func newBus() *Bus {
	b := &Bus{
		kbd: PS2{in: make(chan uint8, 64)},
	}
	b.reset()
	return b
}

// read16 reads the word at addr.
func (b *Bus) read16(a addr) uint16 {
	if a&1 == 0 && a >= vgaBase && a < vgaBase+vgaSize {
		return b.vga.read16(a)
	}
	fmt.Fprintf(klog, "bus: read from invalid address %05x\n", a)
	panic(trap{FAULTMEM, uint32(a)})
}

// write16 writes v to addr.
func (b *Bus) write16(a addr, v uint16) {
	if a&1 == 0 && a >= vgaBase && a < vgaBase+vgaSize {
		b.vga.write16(a, v)
		return
	}
	fmt.Fprintf(klog, "bus: write to invalid address %05x\n", a)
	panic(trap{FAULTMEM, uint32(a)})
}

// inb reads a byte from port p.
func (b *Bus) inb(p port) uint8 {
	switch p {
	case crtcIndex, crtcData:
		return b.crtc.inb(p)
	case kbdData, kbdStatus:
		return b.kbd.inb(p)
	default:
		fmt.Fprintf(klog, "bus: read from invalid port %04x\n", p)
		panic(trap{FAULTPORT, uint32(p)})
	}
}

// outb writes v to port p.
func (b *Bus) outb(p port, v uint8) {
	switch p {
	case crtcIndex, crtcData:
		b.crtc.outb(p, v)
	case kbdData, kbdStatus:
		b.kbd.outb(p, v)
	default:
		fmt.Fprintf(klog, "bus: write to invalid port %04x\n", p)
		panic(trap{FAULTPORT, uint32(p)})
	}
}

func (b *Bus) reset() {
	b.vga.reset()
	b.crtc.reset()
	b.kbd.reset()
}
