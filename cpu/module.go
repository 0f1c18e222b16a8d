package cpu

import "errors"

// A Module is a peripheral device attached to the machine: a clock, a
// keyboard, a display. The five callbacks are the whole contract; any
// per-device state lives in the implementing value. Every callback
// receives the machine and may read or write any of its state, which is
// how devices return query results (in the registers) and see
// memory-mapped data.
//
// Callbacks run synchronously inside the host's loop and must not block.
// A device with genuinely asynchronous input buffers it and surfaces it
// by raising an interrupt on a later step.
type Module interface {
	// Start and Stop bracket a simulation run.
	Start(c *Cpu)
	Stop(c *Cpu)

	// Idle is the host's between-steps hook, e.g. for a clock to
	// decide it is time to raise a tick interrupt. The core never
	// calls it on its own.
	Idle(c *Cpu)

	// HWQ answers the guest's hardware query. By convention the
	// device id goes in A/B, the version in C, and the manufacturer
	// in X/Y.
	HWQ(c *Cpu)

	// HWI is the guest's interrupt into the device; the command and
	// its arguments are wherever the device's contract says, usually
	// A and B.
	HWI(c *Cpu)
}

// ErrModulesFull is returned by AddModule once all slots are taken.
var ErrModulesFull = errors.New("out of module slots")

// AddModule registers a module and returns its index, which is also the
// hardware number the guest uses with HWQ/HWI. Indices are dense and
// assigned in registration order; modules cannot be removed.
func (c *Cpu) AddModule(m Module) (int, error) {
	if len(c.modules) >= MaxModules {
		return -1, ErrModulesFull
	}
	c.modules = append(c.modules, m)
	return len(c.modules) - 1, nil
}

// StartModules starts every registered module in registration order.
func (c *Cpu) StartModules() {
	for _, m := range c.modules {
		m.Start(c)
	}
}

// StopModules stops every registered module in registration order.
func (c *Cpu) StopModules() {
	for _, m := range c.modules {
		m.Stop(c)
	}
}

// IdleModules gives every module its between-steps callback.
func (c *Cpu) IdleModules() {
	for _, m := range c.modules {
		m.Idle(c)
	}
}
