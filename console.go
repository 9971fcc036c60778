package main

// memory is the word addressed memory the console draws into.
type memory interface {
	read16(addr) uint16
	write16(addr, uint16)
}

// pos is a cell position known to lie inside the frame buffer. Build
// one with at.
type pos struct {
	x, y int
}

// at returns the position (x, y), faulting if it is off screen.
func at(x, y int) pos {
	if x < 0 || x >= vgaWidth || y < 0 || y >= vgaHeight {
		panic(trap{FAULTCELL, uint32(y*vgaWidth + x)})
	}
	return pos{x, y}
}

func (p pos) addr() addr { return vgaBase + addr(p.y*vgaWidth+p.x)*2 }

// Console is a text console over the VGA frame buffer. It owns the
// software cursor and keeps the CRTC cursor in step with it.
//
// The console interprets \n, \r and \b. Any other byte is stored as is.
// Output that runs off the right edge wraps to the next row and output
// that runs off the bottom scrolls the screen up one row.
type Console struct {
	mem  memory
	crt  cursorSink
	x, y int
}

// NewConsole returns a console drawing into mem with its hardware
// cursor driven through crt.
func NewConsole(mem memory, crt cursorSink) *Console {
	return &Console{mem: mem, crt: crt}
}

func (c *Console) writeCell(p pos, ch byte, a attr) {
	c.mem.write16(p.addr(), cell(ch, a))
}

func (c *Console) readCell(p pos) uint16 {
	return c.mem.read16(p.addr())
}

// position returns the cursor column and row.
func (c *Console) position() (int, int) { return c.x, c.y }

// setPosition moves the cursor to (x, y), clamped to the screen.
func (c *Console) setPosition(x, y int) {
	if x < 0 {
		x = 0
	} else if x >= vgaWidth {
		x = vgaWidth - 1
	}
	if y < 0 {
		y = 0
	} else if y >= vgaHeight {
		y = vgaHeight - 1
	}
	c.x, c.y = x, y
	c.syncCursor()
}

// syncCursor loads the CRTC cursor location, high byte first.
func (c *Console) syncCursor() {
	off := uint16(c.y*vgaWidth + c.x)
	c.crt.selectRegister(crtcCursorHigh)
	c.crt.writeRegister(uint8(off >> 8))
	c.crt.selectRegister(crtcCursorLow)
	c.crt.writeRegister(uint8(off))
}

// emit writes s at the cursor using attribute a.
func (c *Console) emit(s string, a attr) {
	for i := 0; i < len(s); i++ {
		c.putc(s[i], a)
	}
}

func (c *Console) putc(ch byte, a attr) {
	switch ch {
	case '\n':
		c.x = 0
		c.y++
	case '\r':
		c.x = 0
	case '\b':
		if c.x > 0 {
			c.x--
			c.writeCell(at(c.x, c.y), ' ', defaultAttr)
		} else if c.y > 0 {
			c.y--
			c.x = vgaWidth - 1
			c.writeCell(at(c.x, c.y), ' ', defaultAttr)
		}
	default:
		c.writeCell(at(c.x, c.y), ch, a)
		c.x++
	}

	if c.x >= vgaWidth {
		c.x = 0
		c.y++
	}
	if c.y >= vgaHeight {
		c.scrollUp()
		c.y = vgaHeight - 1
	}
	c.syncCursor()
}

// scrollUp moves every row up by one and blanks the last row.
func (c *Console) scrollUp() {
	for y := 1; y < vgaHeight; y++ {
		for x := 0; x < vgaWidth; x++ {
			c.mem.write16(at(x, y-1).addr(), c.readCell(at(x, y)))
		}
	}
	for x := 0; x < vgaWidth; x++ {
		c.writeCell(at(x, vgaHeight-1), ' ', defaultAttr)
	}
}

// printAt writes s starting at (x, y) and puts the cursor back where it
// was.
func (c *Console) printAt(s string, x, y int, a attr) {
	ox, oy := c.x, c.y
	c.setPosition(x, y)
	c.emit(s, a)
	c.setPosition(ox, oy)
}

// clear blanks the screen and homes the cursor.
func (c *Console) clear() {
	for y := 0; y < vgaHeight; y++ {
		for x := 0; x < vgaWidth; x++ {
			c.writeCell(at(x, y), ' ', defaultAttr)
		}
	}
	c.x, c.y = 0, 0
	c.syncCursor()
}
