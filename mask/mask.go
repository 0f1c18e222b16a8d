// Package mask provides operations to extract the fields of a 16-bit
// DCPU-16 instruction word.
//
// Every instruction starts with one word, bbbbbbaaaaaaoooo (operand forms
// that take an inline word add it after this one): the opcode in the
// low nibble, operand a in bits 4-9, operand b in bits 10-15. Extended
// instructions reuse field a as the opcode selector and field b as their
// only operand.

package mask

// http://0x10c.com/doc/dcpu-16.txt

// Opcode extracts the low nibble. Zero means extended form.
func Opcode(w uint16) uint16 {
	return w & 0xf
}

// FieldA extracts bits 4-9: the destination operand of a basic
// instruction, or the opcode selector of an extended one.
func FieldA(w uint16) uint16 {
	return (w >> 4) & 0x3f
}

// FieldB extracts bits 10-15: the source operand of a basic instruction,
// or the sole operand of an extended one.
func FieldB(w uint16) uint16 {
	return w >> 10
}

// Pack assembles an instruction word from its three fields. The inverse
// of Opcode/FieldA/FieldB; mostly useful for hand-assembling test
// programs.
func Pack(o, a, b uint16) uint16 {
	return o&0xf | (a&0x3f)<<4 | (b&0x3f)<<10
}

// ConsumesWord reports whether operand form f reads an inline word from
// the instruction stream (and therefore advances PC during resolution):
// [register+offset] forms 0x10-0x17, [next word] 0x1e, and the next-word
// literal 0x1f.
func ConsumesWord(f uint16) bool {
	return f >= 0x10 && f <= 0x17 || f == 0x1e || f == 0x1f
}
