package cpu

import (
	"fmt"

	"dcpu16/mask"
)

// Mnemonic tables, used by the front panel to label the instruction at
// PC. Execution never consults these; dispatch works straight off the
// fields (see instructions.go).

var regNames = [8]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

var basicNames = [16]string{
	"", "SET", "ADD", "SUB", "MUL", "DIV", "MOD", "SHL",
	"SHR", "AND", "BOR", "XOR", "IFN", "IFE", "IFG", "IFB",
}

var extendedNames = map[uint16]string{
	JSR: "JSR",
	INT: "INT",
	IAG: "IAG",
	IAS: "IAS",
	RFI: "RFI",
	IAQ: "IAQ",
	HWN: "HWN",
	HWQ: "HWQ",
	HWI: "HWI",
}

// Mnemonic names the instruction word w, or "???" for an illegal one.
func Mnemonic(w uint16) string {
	if mask.Opcode(w) != 0 {
		return basicNames[mask.Opcode(w)]
	}
	if name, ok := extendedNames[mask.FieldA(w)]; ok {
		return name
	}
	return "???"
}

// formatOperand renders operand form f. next supplies the inline word
// for the forms that carry one.
func formatOperand(f uint16, next func() uint16) string {
	switch {
	case f <= 0x07:
		return regNames[f]
	case f <= 0x0f:
		return "[" + regNames[f&7] + "]"
	case f <= 0x17:
		return fmt.Sprintf("[0x%04x+%s]", next(), regNames[f&7])
	case f == 0x18:
		return "POP"
	case f == 0x19:
		return "PEEK"
	case f == 0x1a:
		return "PUSH"
	case f == 0x1b:
		return "SP"
	case f == 0x1c:
		return "PC"
	case f == 0x1d:
		return "O"
	case f == 0x1e:
		return fmt.Sprintf("[0x%04x]", next())
	case f == 0x1f:
		return fmt.Sprintf("0x%04x", next())
	default:
		return fmt.Sprintf("0x%02x", f&0x1f)
	}
}

// Disassemble renders the instruction at addr and reports how many words
// it spans (1 to 3). It reads memory but never mutates machine state.
func (c *Cpu) Disassemble(addr uint16) (string, uint16) {
	w := c.Mem[addr]
	n := uint16(1)
	next := func() uint16 {
		inline := c.Mem[addr+n]
		n++
		return inline
	}

	if mask.Opcode(w) == 0 {
		name, ok := extendedNames[mask.FieldA(w)]
		if !ok {
			return fmt.Sprintf("DAT 0x%04x", w), 1
		}
		return name + " " + formatOperand(mask.FieldB(w), next), n
	}

	// destination first, matching resolution order
	a := formatOperand(mask.FieldA(w), next)
	b := formatOperand(mask.FieldB(w), next)
	return basicNames[mask.Opcode(w)] + " " + a + ", " + b, n
}
