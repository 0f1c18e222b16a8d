// Package device provides the reference peripherals: a tick clock, a
// buffered keyboard, and a memory-mapped text screen. Each one is a
// cpu.Module; guests discover them with HWN/HWQ and drive them with HWI.

package device

import "dcpu16/cpu"

// Hardware ids, in the convention the 0x10c community settled on.
const (
	clockID    uint32 = 0x12d0b402
	keyboardID uint32 = 0x30cf7406
	screenID   uint32 = 0x7349f615
)

var manufacturer uint32 = 0x1c6c8b36 // NYA_ELEKTRISKA

// reply fills the registers a HWQ response uses: the 32-bit device id
// split across A/B, the version in C, and the manufacturer across X/Y.
func reply(c *cpu.Cpu, id uint32, version uint16) {
	c.Reg[cpu.A] = uint16(id)
	c.Reg[cpu.B] = uint16(id >> 16)
	c.Reg[cpu.C] = version
	c.Reg[cpu.X] = uint16(manufacturer)
	c.Reg[cpu.Y] = uint16(manufacturer >> 16)
}
