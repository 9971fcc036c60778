package main

import (
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestPITSleep(t *testing.T) {
	is := is.New(t)
	p := PIT{period: time.Millisecond}
	start := time.Now()
	p.sleep(5 * time.Millisecond)
	is.True(time.Since(start) >= 5*time.Millisecond)

	// no ticks configured
	p = PIT{}
	p.sleep(time.Hour)
}

func TestMakeRawNeedsTerminal(t *testing.T) {
	is := is.New(t)
	r, w, err := os.Pipe()
	is.NoErr(err)
	defer r.Close()
	defer w.Close()

	_, err = makeRaw(r.Fd())
	is.True(err != nil)
}
