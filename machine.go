package main

import (
	"fmt"
	"time"
)

// surface is a host display for the frame buffer.
type surface interface {
	// refresh redraws the frame buffer and hardware cursor.
	refresh()

	// close releases the host display.
	close() error
}

// Machine is the console computer: a bus with its devices, the text
// console drawing through it and the host surface showing it.
type Machine struct {
	bus  *Bus
	cons *Console
	pit  PIT
	host surface

	// haltDelay is the pause before the CPU halts when the user
	// declines the menu.
	haltDelay time.Duration
}

// NewMachine returns a powered off machine. Set host before calling Run.
func NewMachine(tick, haltDelay time.Duration) *Machine {
	b := newBus()
	return &Machine{
		bus:       b,
		cons:      NewConsole(b, portCursor{b}),
		pit:       PIT{period: tick},
		haltDelay: haltDelay,
	}
}

func (m *Machine) refresh() {
	if m.host != nil {
		m.host.refresh()
	}
}

// Run boots the kernel and returns once the machine halts. A keyboard
// controller reset reboots in place; a fault stops the machine with an
// error.
func (m *Machine) Run() error {
	for {
		restart, err := m.boot()
		if !restart {
			return err
		}
		m.bus.reset()
		m.cons = NewConsole(m.bus, portCursor{m.bus})
	}
}

func (m *Machine) boot() (restart bool, err error) {
	defer func() {
		switch v := recover().(type) {
		case nil:
		case reset:
			fmt.Fprintf(klog, "machine: %v\n", v)
			restart = true
		case halt:
			fmt.Fprintf(klog, "machine: %v\n", v)
		case trap:
			m.refresh()
			err = fmt.Errorf("machine: %v", v)
		default:
			panic(v)
		}
	}()
	k := Kernel{m: m, cons: m.cons}
	k.main()
	return false, nil
}
