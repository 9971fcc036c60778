package main

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

const (
	kbdData   port = 0x60
	kbdStatus port = 0x64

	kbdOBF      = 0x01 // output buffer full
	kbdRelease  = 0x80 // break code bit
	kbdCmdReset = 0xfe // pulse the CPU reset line
)

// kbdUS maps set 1 make codes to characters for an unshifted US layout.
// Zero marks keys that produce no character.
var kbdUS = [128]byte{
	0, 27, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\b',
	'\t',
	'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n',
	0, // left control
	'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`',
	0, // left shift
	'\\', 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/',
	0, // right shift
	'*',
	0, // left alt
	' ',
	0,                            // caps lock
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // F1-F10
	0, // num lock
	0, // scroll lock
	0, // home
	0, // up
	0, // page up
	'-',
	0, // left
	0, // keypad 5
	0, // right
	'+',
	0, // end
	0, // down
	0, // page down
	0, // insert
	0, // delete
	0, 0, 0,
	0, // F11
	0, // F12
}

// scancodes is the reverse of kbdUS. The first make code wins for
// characters found on more than one key.
var scancodes = func() map[byte]uint8 {
	m := make(map[byte]uint8)
	for sc, ch := range kbdUS {
		if _, ok := m[ch]; ch != 0 && !ok {
			m[ch] = uint8(sc)
		}
	}
	return m
}()

// scancode returns the make code that produces ch. Upper case letters
// map to their unshifted key and a carriage return to Enter.
func scancode(ch byte) (uint8, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		ch += 'a' - 'A'
	case ch == '\r':
		ch = '\n'
	}
	sc, ok := scancodes[ch]
	return sc, ok
}

// PS2 is an 8042 keyboard controller. Host adapters push scan codes into
// in; the machine reads them back through the status and data ports.
type PS2 struct {
	in     chan uint8
	status uint8
	data   uint8
	once   sync.Once
}

func (kb *PS2) inb(p port) uint8 {
	switch p {
	case kbdStatus:
		if kb.status&kbdOBF == 0 {
			select {
			case sc, ok := <-kb.in:
				if ok {
					kb.latch(sc)
				}
			default:
			}
		}
		return kb.status
	default:
		kb.status &^= kbdOBF
		return kb.data
	}
}

func (kb *PS2) outb(p port, v uint8) {
	if p == kbdStatus && v == kbdCmdReset {
		fmt.Fprintf(klog, "kbd: cpu reset\n")
		panic(reset{})
	}
	fmt.Fprintf(klog, "kbd: ignored %02x written to port %02x\n", v, p)
}

func (kb *PS2) latch(sc uint8) {
	kb.data = sc
	kb.status |= kbdOBF
}

// wait blocks until a scan code is latched. It reports false once the
// host has gone away and nothing is left to read.
func (kb *PS2) wait() bool {
	if kb.status&kbdOBF != 0 {
		return true
	}
	sc, ok := <-kb.in
	if !ok {
		return false
	}
	kb.latch(sc)
	return true
}

func (kb *PS2) reset() {
	kb.status = 0
	kb.data = 0
}

// press queues a raw scan code. Safe to call from the host goroutine.
func (kb *PS2) press(sc uint8) { kb.in <- sc }

// typeByte queues the make and break codes for the key producing ch.
func (kb *PS2) typeByte(ch byte) {
	sc, ok := scancode(ch)
	if !ok {
		fmt.Fprintf(klog, "kbd: no key for %q\n", ch)
		return
	}
	kb.press(sc)
	kb.press(sc | kbdRelease)
}

// close disconnects the host. Only the goroutine feeding the controller
// may call it.
func (kb *PS2) close() {
	kb.once.Do(func() { close(kb.in) })
}

// feed types every byte read from r, then disconnects. ETX and EOT end
// the input early so a raw terminal can still power the machine off.
func (kb *PS2) feed(r io.Reader) {
	defer kb.close()
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(klog, "kbd: input: %v\n", err)
			}
			return
		}
		switch ch {
		case 0x03, 0x04:
			return
		case 0x7f:
			ch = '\b'
		}
		kb.typeByte(ch)
	}
}
