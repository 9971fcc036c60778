package main

// getc polls the keyboard controller until a key is pressed and returns
// its character, or 0 for keys without one. Key releases are dropped.
// The host surface is refreshed before each wait so the screen is
// current while the machine is idle.
func (k *Kernel) getc() byte {
	b := k.m.bus
	for {
		if b.inb(kbdStatus)&kbdOBF == 0 {
			k.m.refresh()
			if !b.kbd.wait() {
				panic(halt{})
			}
			continue
		}
		sc := b.inb(kbdData)
		if sc&kbdRelease != 0 {
			continue
		}
		return kbdUS[sc]
	}
}

// gets reads a line of at most max-1 characters, echoing it to the
// console. Enter ends the line and is not stored.
func (k *Kernel) gets(max int) string {
	buf := make([]byte, 0, max)
	for len(buf) < max-1 {
		switch ch := k.getc(); ch {
		case '\n', '\r':
			return string(buf)
		case '\b':
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				k.cons.emit("\b \b", whiteOnBlack)
			}
		case 0:
		default:
			buf = append(buf, ch)
			k.cons.emit(string(ch), whiteOnBlack)
		}
	}
	return string(buf)
}
