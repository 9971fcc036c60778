package main

import (
	"golang.org/x/sys/unix"
)

func tcget(fd uintptr) (*unix.Termios, error) {
	p, err := unix.IoctlGetTermios(int(fd), getTermios)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func tcset(fd uintptr, p *unix.Termios) error {
	return unix.IoctlSetTermios(int(fd), setTermios, p)
}

// makeRaw switches the terminal on fd to byte at a time input without
// echo or signals. The returned func restores the previous settings.
func makeRaw(fd uintptr) (func() error, error) {
	old, err := tcget(fd)
	if err != nil {
		return nil, err
	}
	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Iflag &^= unix.ICRNL
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := tcset(fd, &raw); err != nil {
		return nil, err
	}
	return func() error { return tcset(fd, old) }, nil
}
