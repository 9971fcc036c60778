// myos is a VGA text console machine.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell"
)

func main() {
	var cli runCmd
	ctx := kong.Parse(&cli,
		kong.Name("myos"),
		kong.Description("A VGA text console machine."),
	)
	ctx.FatalIfErrorf(cli.Run())
}

type runCmd struct {
	Display   string        `name:"display" enum:"tcell,dump" default:"tcell" help:"host display: tcell or dump"`
	Keys      string        `name:"keys" type:"existingfile" help:"type keystrokes from file (dump display only)"`
	Log       string        `name:"log" type:"path" help:"write device diagnostics to file"`
	Tick      time.Duration `name:"tick" default:"10ms" help:"PIT tick period"`
	HaltDelay time.Duration `name:"halt-delay" default:"3s" help:"pause before the CPU halts"`
}

func (r *runCmd) Run() error {
	return r.run(os.Stdin, os.Stdout)
}

// run boots the machine. Under the dump display keys are read from
// --keys, or from stdin when no file is given, and the final screen is
// written to stdout.
func (r *runCmd) run(stdin io.Reader, stdout io.Writer) error {
	klog = io.Discard
	if r.Display == "dump" {
		klog = os.Stderr
	}
	if r.Log != "" {
		f, err := os.Create(r.Log)
		if err != nil {
			return fmt.Errorf("log: %w", err)
		}
		defer f.Close()
		klog = f
	}

	m := NewMachine(r.Tick, r.HaltDelay)
	switch r.Display {
	case "tcell":
		if r.Keys != "" {
			return errors.New("--keys needs --display=dump")
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("tcell: %w", err)
		}
		host, err := newTcellSurface(s, m.bus)
		if err != nil {
			return err
		}
		m.host = host
	default:
		in := stdin
		if r.Keys != "" {
			f, err := os.Open(r.Keys)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		} else if f, ok := stdin.(*os.File); ok {
			if restore, err := makeRaw(f.Fd()); err == nil {
				defer restore()
			}
		}
		m.host = &dumpSurface{bus: m.bus, w: stdout}
		go m.bus.kbd.feed(in)
	}

	err := m.Run()
	if cerr := m.host.close(); err == nil {
		err = cerr
	}
	return err
}
