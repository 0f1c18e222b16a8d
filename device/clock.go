package device

import (
	"time"

	"dcpu16/cpu"
)

// A Clock ticks at a guest-chosen fraction of 60 Hz and can raise an
// interrupt per tick. The guest programs it through HWI with a command
// in A:
//
//	0: set the rate from B: tick 60/B times per second; B=0 stops it
//	1: store the ticks elapsed since the last rate change into C
//	2: raise interrupts with the message in B on every tick; B=0 stops
//
// Ticks are counted in Idle from host wall-clock time, so the tick rate
// is independent of how fast the host steps the machine.
type Clock struct {
	// now is swappable so tests can feed a fake clock.
	now func() time.Time

	interval time.Duration
	last     time.Time
	ticks    uint16
	message  uint16
}

func (k *Clock) clock() time.Time {
	if k.now != nil {
		return k.now()
	}
	return time.Now()
}

func (k *Clock) Start(c *cpu.Cpu) {
	k.interval = 0
	k.ticks = 0
	k.message = 0
	k.last = k.clock()
}

func (k *Clock) Stop(c *cpu.Cpu) {}

func (k *Clock) Idle(c *cpu.Cpu) {
	if k.interval == 0 {
		return
	}
	// catch up tick by tick; a slow host fires the backlog rather than
	// losing time
	for k.clock().Sub(k.last) >= k.interval {
		k.last = k.last.Add(k.interval)
		k.ticks++
		if k.message != 0 {
			c.Interrupt(k.message)
		}
	}
}

func (k *Clock) HWQ(c *cpu.Cpu) {
	reply(c, clockID, 1)
}

func (k *Clock) HWI(c *cpu.Cpu) {
	switch c.Reg[cpu.A] {
	case 0:
		b := c.Reg[cpu.B]
		if b == 0 {
			k.interval = 0
		} else {
			k.interval = time.Second / 60 * time.Duration(b)
		}
		k.last = k.clock()
		k.ticks = 0
	case 1:
		c.Reg[cpu.C] = k.ticks
	case 2:
		k.message = c.Reg[cpu.B]
	}
}
