package main

import "fmt"

const (
	crtcIndex port = 0x3d4
	crtcData  port = 0x3d5

	crtcCursorHigh = 0x0e
	crtcCursorLow  = 0x0f
)

// CRTC is the VGA CRT controller. Registers are reached through an
// index/data port pair: a write to the index port selects a register and
// the data port reads or writes it.
type CRTC struct {
	index uint8
	regs  [0x19]uint8
}

func (c *CRTC) inb(p port) uint8 {
	switch p {
	case crtcIndex:
		return c.index
	default:
		if int(c.index) >= len(c.regs) {
			return 0xff
		}
		return c.regs[c.index]
	}
}

func (c *CRTC) outb(p port, v uint8) {
	switch p {
	case crtcIndex:
		c.index = v
	default:
		if int(c.index) >= len(c.regs) {
			fmt.Fprintf(klog, "crtc: write to unknown register %02x: %02x\n", c.index, v)
			return
		}
		c.regs[c.index] = v
	}
}

// cursor returns the linear cell offset of the hardware cursor.
func (c *CRTC) cursor() int {
	return int(c.regs[crtcCursorHigh])<<8 | int(c.regs[crtcCursorLow])
}

func (c *CRTC) reset() {
	c.index = 0
	c.regs = [0x19]uint8{}
}

// cursorSink receives hardware cursor updates.
type cursorSink interface {
	selectRegister(idx uint8)
	writeRegister(v uint8)
}

// portCursor drives the CRTC cursor registers through the I/O ports.
type portCursor struct {
	bus *Bus
}

func (pc portCursor) selectRegister(idx uint8) { pc.bus.outb(crtcIndex, idx) }
func (pc portCursor) writeRegister(v uint8)    { pc.bus.outb(crtcData, v) }
