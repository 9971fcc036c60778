package main

import "fmt"

// Kernel is the program running on the machine. Its state lives only
// until the next reboot.
type Kernel struct {
	m    *Machine
	cons *Console

	selected int // highlighted menu entry
}

func (k *Kernel) main() {
	c := k.cons
	c.clear()
	c.emit("Welcome to MyOS!\n", lightCyanOnBlack)

	c.emit("Please enter your name: ", whiteOnBlack)
	name := k.gets(256)
	c.emit("\nHello, ", greenOnBlack)
	c.emit(name, yellowOnBlack)
	c.emit("!\n", greenOnBlack)

	c.emit("\nDo you want to do math? (yes/no): ", magentaOnBlack)
	if answer := k.gets(10); answer == "" || (answer[0] != 'y' && answer[0] != 'Y') {
		c.clear()
		c.emit("Ok then, time ends...\n", redOnBlack)
		k.m.refresh()
		k.m.pit.sleep(k.m.haltDelay)
		c.emit("CPU halting.\n", redOnBlack)
		k.hlt()
	}

	for {
		k.drawMenu()
		i := k.menuInput()
		if i < 0 {
			continue
		}
		fmt.Fprintf(klog, "kernel: menu %q\n", menu[i].label)
		menu[i].action(k)
		c.clear()
		c.emit("Returning to main menu...\n\n", darkGreyOnBlack)
		k.selected = 0
	}
}

// hlt stops the CPU. The screen stays up until the host powers off.
func (k *Kernel) hlt() {
	fmt.Fprintf(klog, "cpu: hlt\n")
	b := k.m.bus
	for {
		k.m.refresh()
		if !b.kbd.wait() {
			panic(halt{})
		}
		b.inb(kbdData)
	}
}

func (k *Kernel) doMath() {
	c := k.cons
	c.clear()
	c.emit("--- Do Math ---\n", yellowOnBlack)

	c.emit("Enter first number: ", whiteOnBlack)
	a := atoi(k.gets(32))
	c.emit("Enter second number: ", whiteOnBlack)
	b := atoi(k.gets(32))

	q, err := divide(a, b)
	if err != nil {
		k.divideByZero()
	}
	results := []struct {
		label string
		v     int
	}{
		{"Sum: ", addN(a, b)},
		{"Difference: ", subtract(a, b)},
		{"Product: ", multiplyN(a, b)},
		{"Quotient: ", q},
	}
	for _, r := range results {
		c.emit(r.label, lightBlueOnBlack)
		c.emit(itoa(r.v, 10), whiteOnBlack)
		c.emit("\n", whiteOnBlack)
	}
	c.emit("\n", whiteOnBlack)

	c.emit("Press any key to return to menu...\n", darkGreyOnBlack)
	k.getc()
}

func (k *Kernel) divideByZero() {
	k.cons.emit("Error: Division by zero!\n", redOnBlack)
}

func (k *Kernel) about() {
	c := k.cons
	c.clear()
	c.emit("--- About MyOS ---\n", yellowOnBlack)
	c.emit("MyOS is a simple 64-bit kernel built from scratch using assembly for boot and C for Kernel.\n", whiteOnBlack)
	c.emit("It offers basic VGA type display text output and keyboard input.\n", whiteOnBlack)
	c.emit("Developed by me as a learning project for OS development.\n", whiteOnBlack)
	c.emit("\nPress any key to return to menu...\n", darkGreyOnBlack)
	k.getc()
}

func (k *Kernel) reboot() {
	k.cons.clear()
	k.cons.emit("Rebooting system...\n", redOnBlack)
	k.m.refresh()
	k.m.bus.outb(kbdStatus, kbdCmdReset)
	k.hlt()
}

func (k *Kernel) shutdown() {
	k.cons.clear()
	k.cons.emit("Shutting down system...\n", redOnBlack)
	k.hlt()
}
