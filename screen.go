package main

import (
	"fmt"

	"github.com/gdamore/tcell"
)

// egaColors maps the EGA palette onto the terminal's 16 colors.
var egaColors = [16]tcell.Color{
	black:        tcell.ColorBlack,
	blue:         tcell.ColorNavy,
	green:        tcell.ColorGreen,
	cyan:         tcell.ColorTeal,
	red:          tcell.ColorMaroon,
	magenta:      tcell.ColorPurple,
	brown:        tcell.ColorOlive,
	lightGrey:    tcell.ColorSilver,
	darkGrey:     tcell.ColorGray,
	lightBlue:    tcell.ColorBlue,
	lightGreen:   tcell.ColorLime,
	lightCyan:    tcell.ColorAqua,
	lightRed:     tcell.ColorRed,
	lightMagenta: tcell.ColorFuchsia,
	yellow:       tcell.ColorYellow,
	white:        tcell.ColorWhite,
}

func style(a attr) tcell.Style {
	return tcell.StyleDefault.Foreground(egaColors[a.fg()]).Background(egaColors[a.bg()])
}

// glyph returns the rune drawn for a frame buffer character.
func glyph(ch byte) rune {
	if ch < ' ' || ch > '~' {
		return ' '
	}
	return rune(ch)
}

// tcellSurface shows the frame buffer in a terminal and types the
// terminal's keys into the keyboard controller.
type tcellSurface struct {
	screen tcell.Screen
	bus    *Bus
	done   chan struct{}
}

func newTcellSurface(s tcell.Screen, b *Bus) (*tcellSurface, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell: %w", err)
	}
	s.Clear()
	t := &tcellSurface{
		screen: s,
		bus:    b,
		done:   make(chan struct{}),
	}
	go t.poll()
	return t, nil
}

func (t *tcellSurface) refresh() {
	fb := t.bus.vga.snapshot()
	for i, v := range fb {
		t.screen.SetContent(i%vgaWidth, i/vgaWidth, glyph(byte(v)), nil, style(attr(v>>8)))
	}
	off := t.bus.crtc.cursor()
	if off < vgaCells {
		t.screen.ShowCursor(off%vgaWidth, off/vgaWidth)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

// poll translates key events until the screen is finalised or Ctrl-C
// powers the machine off.
func (t *tcellSurface) poll() {
	defer close(t.done)
	defer t.bus.kbd.close()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if !t.key(ev) {
				return
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *tcellSurface) key(ev *tcell.EventKey) bool {
	kbd := &t.bus.kbd
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		kbd.typeByte('\n')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		kbd.typeByte('\b')
	case tcell.KeyTab:
		kbd.typeByte('\t')
	case tcell.KeyEscape:
		kbd.typeByte(27)
	case tcell.KeyRune:
		if r := ev.Rune(); r < 0x80 {
			kbd.typeByte(byte(r))
		}
	}
	return true
}

func (t *tcellSurface) close() error {
	t.screen.Fini()
	for {
		select {
		case <-t.done:
			return nil
		case <-t.bus.kbd.in:
			// unblock a press the halted machine will never read
		}
	}
}
