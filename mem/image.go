// Package mem reads and renders DCPU-16 memory images.
//
// The image format is plain text: 16-bit words as hex, separated by any
// whitespace. Assemblers dump it, Parse reads it back, and the result is
// handed to Cpu.Load. Comments and addresses are the assembler's
// business, not ours.

package mem

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes a whitespace-separated hex word dump.
func Parse(src string) ([]uint16, error) {
	fields := strings.Fields(src)
	words := make([]uint16, 0, len(fields))
	for i, f := range fields {
		w, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("word %d: %q is not a 16-bit hex word", i, f)
		}
		words = append(words, uint16(w))
	}
	return words, nil
}

// MustParse is Parse for images baked into the program; it panics on a
// malformed one.
func MustParse(src string) []uint16 {
	words, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return words
}

// Dump renders words as rows of eight hex words, each row prefixed with
// its address starting from base. Parse does not accept the address
// prefixes; with them removed, the text parses back to the same words.
func Dump(base uint16, words []uint16) string {
	var b strings.Builder
	for i, w := range words {
		switch {
		case i%8 == 0 && i > 0:
			b.WriteString("\n")
			fmt.Fprintf(&b, "%04x:", base+uint16(i))
		case i%8 == 0:
			fmt.Fprintf(&b, "%04x:", base)
		}
		fmt.Fprintf(&b, " %04x", w)
	}
	return b.String()
}
