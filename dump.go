package main

import (
	"bufio"
	"io"
	"strings"
)

// dumpSurface draws nothing while the machine runs and writes the final
// screen as plain text when closed.
type dumpSurface struct {
	bus *Bus
	w   io.Writer
}

func (d *dumpSurface) refresh() {}

func (d *dumpSurface) close() error {
	rows := make([]string, vgaHeight)
	for y := range rows {
		rows[y] = strings.TrimRight(d.bus.vga.row(y), " ")
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	bw := bufio.NewWriter(d.w)
	for _, r := range rows {
		bw.WriteString(r)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
