package main

import (
	"testing"

	"github.com/gdamore/tcell"
	"github.com/matryer/is"
)

func newSimSurface(t *testing.T) (*Machine, tcell.SimulationScreen, *tcellSurface) {
	t.Helper()
	m := NewMachine(0, 0)
	s := tcell.NewSimulationScreen("")
	host, err := newTcellSurface(s, m.bus)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(vgaWidth, vgaHeight)
	m.host = host
	return m, s, host
}

func TestTcellSurfaceRefresh(t *testing.T) {
	is := is.New(t)
	m, s, host := newSimSurface(t)
	defer host.close()

	m.cons.clear()
	m.cons.printAt("Hi", 10, 2, mkattr(yellow, blue))
	m.cons.printAt("\x01", 0, 0, whiteOnBlack)
	m.cons.setPosition(4, 6)
	m.refresh()

	cells, w, _ := s.GetContents()
	is.Equal(w, vgaWidth)
	c := cells[2*w+10]
	is.Equal(c.Runes, []rune{'H'})
	fg, bg, _ := c.Style.Decompose()
	is.Equal(fg, tcell.ColorYellow)
	is.Equal(bg, tcell.ColorNavy)
	is.Equal(cells[0].Runes, []rune{' '})

	x, y, visible := s.GetCursor()
	is.Equal(x, 4)
	is.Equal(y, 6)
	is.True(visible)
}

func TestTcellSurfaceKeys(t *testing.T) {
	is := is.New(t)
	m, s, host := newSimSurface(t)

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'é', tcell.ModNone) // no key for it
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	var got []uint8
	for m.bus.kbd.wait() {
		got = append(got, m.bus.inb(kbdData))
	}
	is.Equal(got, []uint8{0x1e, 0x9e, 0x1c, 0x9c, 0x0e, 0x8e})
	is.NoErr(host.close())
}

func TestStyle(t *testing.T) {
	is := is.New(t)
	fg, bg, _ := style(blackOnWhite).Decompose()
	is.Equal(fg, tcell.ColorBlack)
	is.Equal(bg, tcell.ColorWhite)
	fg, _, _ = style(mkattr(lightMagenta, black)).Decompose()
	is.Equal(fg, tcell.ColorFuchsia)
}
