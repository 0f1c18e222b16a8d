package cpu

import "log"

// Interrupt raises an interrupt with the given message. Callers are the
// INT opcode, peripheral modules, and the host (a timer tick, a
// keypress).
//
// While the machine is queueing (inside a handler, or after IAQ 1) the
// message goes into a bounded FIFO; a full queue drops the message. The
// drop is part of the contract: a guest that cannot keep up loses
// interrupts, it does not grow the host's heap.
//
// Otherwise delivery is immediate: A and PC are saved to the stack, PC
// vectors to IA, A carries the message, and queueing turns on so the
// handler runs without reentry until it executes RFI.
func (c *Cpu) Interrupt(msg uint16) {
	if c.queueing {
		if c.qlen == queueSize {
			log.Printf("interrupt queue full, dropping %#04x", msg)
			return
		}
		c.queue[(c.qhead+c.qlen)%queueSize] = msg
		c.qlen++
		return
	}
	c.deliver(msg)
}

// Pending reports the number of queued, undelivered interrupts.
func (c *Cpu) Pending() int {
	return c.qlen
}

func (c *Cpu) dequeue() uint16 {
	msg := c.queue[c.qhead]
	c.qhead = (c.qhead + 1) % queueSize
	c.qlen--
	return msg
}

func (c *Cpu) deliver(msg uint16) {
	c.SP--
	c.Mem[c.SP] = c.Reg[A]
	c.SP--
	c.Mem[c.SP] = c.PC
	c.PC = c.IA
	c.Reg[A] = msg
	c.queueing = true
}
