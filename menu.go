package main

import "strings"

const (
	menuStartY = 5
	menuTitle  = "--- Main Menu ---"
)

var menu = []struct {
	label  string
	action func(*Kernel)
}{
	{"1. Do Math", (*Kernel).doMath},
	{"2. About MyOS", (*Kernel).about},
	{"3. Reboot", (*Kernel).reboot},
	{"4. Shutdown", (*Kernel).shutdown},
	{"5. Calculator", (*Kernel).runCalculator},
}

// drawMenu blanks the menu area and draws every entry, the selected
// one highlighted.
func (k *Kernel) drawMenu() {
	c := k.cons
	blank := strings.Repeat(" ", vgaWidth)
	for i := 0; i < len(menu)+2; i++ {
		c.printAt(blank, 0, menuStartY+i, whiteOnBlack)
	}
	c.printAt(menuTitle, (vgaWidth-len(menuTitle))/2, menuStartY-2, yellowOnBlack)

	for i, e := range menu {
		a := whiteOnBlack
		if i == k.selected {
			a = blackOnWhite
		}
		c.printAt(e.label, (vgaWidth-len(e.label))/2, menuStartY+i, a)
	}
}

// menuInput handles one key: w and s move the selection, wrapping at
// either end, and Enter returns the selected entry. Any other key
// returns -1.
func (k *Kernel) menuInput() int {
	switch k.getc() {
	case 'w', 'W':
		k.selected--
		if k.selected < 0 {
			k.selected = len(menu) - 1
		}
		k.drawMenu()
	case 's', 'S':
		k.selected++
		if k.selected >= len(menu) {
			k.selected = 0
		}
		k.drawMenu()
	case '\n':
		return k.selected
	}
	return -1
}
