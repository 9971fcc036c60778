package main

import (
	"fmt"
	"time"
)

// PIT is the programmable interval timer, ticking every period.
type PIT struct {
	period time.Duration
}

// sleep blocks for d, counted in whole ticks.
func (p *PIT) sleep(d time.Duration) {
	if d <= 0 || p.period <= 0 {
		return
	}
	n := int(d / p.period)
	fmt.Fprintf(klog, "pit: sleeping %d ticks\n", n)
	t := time.NewTicker(p.period)
	defer t.Stop()
	for ; n > 0; n-- {
		<-t.C
	}
}
