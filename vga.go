package main

import (
	"strings"
	"sync"
)

const (
	vgaBase   addr = 0xb8000
	vgaWidth       = 80
	vgaHeight      = 25
	vgaCells       = vgaWidth * vgaHeight
	vgaSize        = vgaCells * 2 // bytes
)

// color is one of the 16 EGA colors.
type color uint8

const (
	black color = iota
	blue
	green
	cyan
	red
	magenta
	brown
	lightGrey
	darkGrey
	lightBlue
	lightGreen
	lightCyan
	lightRed
	lightMagenta
	yellow
	white
)

// attr is a display attribute byte: background in the high nibble,
// foreground in the low nibble.
type attr uint8

func mkattr(fg, bg color) attr { return attr(bg&0xf)<<4 | attr(fg&0xf) }

func (a attr) fg() color { return color(a & 0xf) }
func (a attr) bg() color { return color(a >> 4) }

var (
	whiteOnBlack     = mkattr(white, black)
	blackOnWhite     = mkattr(black, white)
	redOnBlack       = mkattr(red, black)
	greenOnBlack     = mkattr(green, black)
	yellowOnBlack    = mkattr(yellow, black)
	darkGreyOnBlack  = mkattr(darkGrey, black)
	lightBlueOnBlack = mkattr(lightBlue, black)
	magentaOnBlack   = mkattr(magenta, black)
	lightCyanOnBlack = mkattr(lightCyan, black)

	// defaultAttr is used for blanked cells.
	defaultAttr = whiteOnBlack
)

// cell packs a character and its attribute into a frame buffer word.
func cell(ch byte, a attr) uint16 { return uint16(a)<<8 | uint16(ch) }

// blank is an erased cell.
var blank = cell(' ', defaultAttr)

// VGA is the 80x25 text mode frame buffer. Each cell is two bytes, the
// character in the low byte and the attribute in the high byte.
type VGA struct {
	mu sync.Mutex
	fb [vgaCells]uint16
}

func (v *VGA) read16(a addr) uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fb[(a-vgaBase)>>1]
}

func (v *VGA) write16(a addr, val uint16) {
	v.mu.Lock()
	v.fb[(a-vgaBase)>>1] = val
	v.mu.Unlock()
}

// snapshot returns a copy of the frame buffer for renderers.
func (v *VGA) snapshot() [vgaCells]uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fb
}

// row returns the characters of row y.
func (v *VGA) row(y int) string {
	fb := v.snapshot()
	var sb strings.Builder
	for _, c := range fb[y*vgaWidth : (y+1)*vgaWidth] {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// reset fills the frame buffer with blank cells.
func (v *VGA) reset() {
	v.mu.Lock()
	for i := range v.fb {
		v.fb[i] = blank
	}
	v.mu.Unlock()
}
