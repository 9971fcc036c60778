package main

import "fmt"

const (
	FAULTMEM  = 1 // memory access outside mapped devices
	FAULTPORT = 2 // I/O to an unassigned port
	FAULTCELL = 3 // cell position outside the frame buffer
)

// trap is a machine fault. It is raised with panic and recovered by
// Machine.Run.
type trap struct {
	kind uint8
	addr uint32
}

func (t trap) String() string {
	switch t.kind {
	case FAULTMEM:
		return fmt.Sprintf("trap: bad memory address %05x", t.addr)
	case FAULTPORT:
		return fmt.Sprintf("trap: bad port %04x", t.addr)
	case FAULTCELL:
		return fmt.Sprintf("trap: bad cell offset %d", int32(t.addr))
	default:
		return fmt.Sprintf("trap: %d at %05x", t.kind, t.addr)
	}
}

// reset restarts the machine. Raised by the keyboard controller on a
// pulse of the CPU reset line.
type reset struct{}

func (reset) String() string { return "reset" }

// halt stops the machine for good.
type halt struct{}

func (halt) String() string { return "halt" }
