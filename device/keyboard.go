package device

import "dcpu16/cpu"

// Key codes outside the printable ASCII range.
const (
	KeyBackspace = 0x10
	KeyReturn    = 0x11
	KeyInsert    = 0x12
	KeyDelete    = 0x13
	KeyUp        = 0x80
	KeyDown      = 0x81
	KeyLeft      = 0x82
	KeyRight     = 0x83
)

const keyBufferCap = 8

// A Keyboard buffers keys typed on the host side until the guest reads
// them. HWI commands, selected by A:
//
//	0: clear the buffer
//	1: pop the next key into C, or 0 if the buffer is empty
//	2: set C to 1 if the key in B is pending, else 0
//	3: raise interrupts with the message in B on each keypress; B=0 stops
//
// Terminals deliver no key-up events, so "pressed" here means buffered
// and not yet consumed.
type Keyboard struct {
	buf     []uint16
	message uint16
}

func (k *Keyboard) Start(c *cpu.Cpu) {
	k.buf = k.buf[:0]
	k.message = 0
}

func (k *Keyboard) Stop(c *cpu.Cpu) {}
func (k *Keyboard) Idle(c *cpu.Cpu) {}

// Push hands a host keypress to the device. A full buffer drops the
// oldest key so the guest always sees the most recent typing.
func (k *Keyboard) Push(c *cpu.Cpu, key uint16) {
	if len(k.buf) == keyBufferCap {
		k.buf = k.buf[1:]
	}
	k.buf = append(k.buf, key)
	if k.message != 0 {
		c.Interrupt(k.message)
	}
}

func (k *Keyboard) HWQ(c *cpu.Cpu) {
	reply(c, keyboardID, 1)
}

func (k *Keyboard) HWI(c *cpu.Cpu) {
	switch c.Reg[cpu.A] {
	case 0:
		k.buf = k.buf[:0]
	case 1:
		if len(k.buf) == 0 {
			c.Reg[cpu.C] = 0
			return
		}
		c.Reg[cpu.C] = k.buf[0]
		k.buf = k.buf[1:]
	case 2:
		c.Reg[cpu.C] = 0
		for _, key := range k.buf {
			if key == c.Reg[cpu.B] {
				c.Reg[cpu.C] = 1
				break
			}
		}
	case 3:
		k.message = c.Reg[cpu.B]
	}
}
