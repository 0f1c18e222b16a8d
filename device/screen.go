package device

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dcpu16/cpu"
)

// Screen dimensions in cells.
const (
	ScreenWidth  = 32
	ScreenHeight = 12
)

// A Screen is a memory-mapped text display: once the guest maps it, it
// renders ScreenWidth x ScreenHeight cells straight out of CPU memory.
// Each cell is one word: the character in the low 7 bits, the background
// palette index in bits 8-11, the foreground in bits 12-15.
//
// HWI commands, selected by A:
//
//	0: map video memory at the address in B; B=0 unmaps
//
// There is no framebuffer of its own and no copy on write: the guest
// scribbles into its memory, the next render shows it.
type Screen struct {
	vram uint16
}

func (s *Screen) Start(c *cpu.Cpu) { s.vram = 0 }
func (s *Screen) Stop(c *cpu.Cpu)  {}
func (s *Screen) Idle(c *cpu.Cpu)  {}

func (s *Screen) HWQ(c *cpu.Cpu) {
	reply(c, screenID, 0x1802)
}

func (s *Screen) HWI(c *cpu.Cpu) {
	switch c.Reg[cpu.A] {
	case 0:
		s.vram = c.Reg[cpu.B]
	}
}

// Mapped reports whether the guest has mapped video memory yet.
func (s *Screen) Mapped() bool {
	return s.vram != 0
}

// cellStyles caches one lipgloss style per fg/bg combination actually
// seen; 256 at most.
var cellStyles = map[uint16]lipgloss.Style{}

func cellStyle(colors uint16) lipgloss.Style {
	st, ok := cellStyles[colors]
	if !ok {
		st = lipgloss.NewStyle().
			Foreground(lipgloss.Color(strconv.Itoa(int(colors >> 4)))).
			Background(lipgloss.Color(strconv.Itoa(int(colors & 0xf))))
		cellStyles[colors] = st
	}
	return st
}

// Render draws the display from the machine's memory. Unmapped screens
// render as a blank of the right size so the panel layout holds still.
func (s *Screen) Render(c *cpu.Cpu) string {
	var rows []string
	for y := 0; y < ScreenHeight; y++ {
		var row strings.Builder
		for x := 0; x < ScreenWidth; x++ {
			if s.vram == 0 {
				row.WriteByte(' ')
				continue
			}
			cell := c.Mem[s.vram+uint16(y*ScreenWidth+x)]
			ch := byte(cell & 0x7f)
			if ch < 0x20 || ch == 0x7f {
				ch = ' '
			}
			colors := cell >> 8
			if colors == 0 {
				row.WriteByte(ch)
				continue
			}
			row.WriteString(cellStyle(colors).Render(string(ch)))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
