// Package panel runs a machine behind a terminal front panel: the screen
// device's cells, a register strip, and the host keyboard wired to the
// keyboard device. It owns the step loop; the core itself never
// schedules anything.

package panel

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"dcpu16/cpu"
	"dcpu16/device"
)

// stepsPerFrame instructions execute per frame at 60 fps, roughly a 120
// kHz machine. Real DCPU-16 timing was never cycle-accurate anyway.
const stepsPerFrame = 2000

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	cpu      *cpu.Cpu
	screen   *device.Screen
	keyboard *device.Keyboard

	steps uint64
	err   error
}

func (m model) Init() tea.Cmd {
	return frame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if m.keyboard != nil {
			for _, key := range translate(msg) {
				m.keyboard.Push(m.cpu, key)
			}
		}

	case frameMsg:
		for i := 0; i < stepsPerFrame; i++ {
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.steps++
		}
		m.cpu.IdleModules()
		return m, frame()
	}
	return m, nil
}

// translate maps a host key event to device key codes. Unmappable keys
// vanish; the guest only ever sees the device's own alphabet.
func translate(msg tea.KeyMsg) []uint16 {
	switch msg.Type {
	case tea.KeyRunes:
		var keys []uint16
		for _, r := range msg.Runes {
			if r >= 0x20 && r < 0x7f {
				keys = append(keys, uint16(r))
			}
		}
		return keys
	case tea.KeySpace:
		return []uint16{' '}
	case tea.KeyBackspace:
		return []uint16{device.KeyBackspace}
	case tea.KeyEnter:
		return []uint16{device.KeyReturn}
	case tea.KeyDelete:
		return []uint16{device.KeyDelete}
	case tea.KeyUp:
		return []uint16{device.KeyUp}
	case tea.KeyDown:
		return []uint16{device.KeyDown}
	case tea.KeyLeft:
		return []uint16{device.KeyLeft}
	case tea.KeyRight:
		return []uint16{device.KeyRight}
	}
	return nil
}

var (
	screenBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) status() string {
	c := m.cpu
	text, _ := c.Disassemble(c.PC)
	regs := fmt.Sprintf(
		" A %04x  B %04x  C %04x  X %04x\n Y %04x  Z %04x  I %04x  J %04x\nPC %04x SP %04x  O %04x IA %04x",
		c.Reg[cpu.A], c.Reg[cpu.B], c.Reg[cpu.C], c.Reg[cpu.X],
		c.Reg[cpu.Y], c.Reg[cpu.Z], c.Reg[cpu.I], c.Reg[cpu.J],
		c.PC, c.SP, c.OV, c.IA,
	)
	return statusStyle.Render(fmt.Sprintf("%s\n\n%d steps, next: %s", regs, m.steps, text))
}

func (m model) View() string {
	var display string
	if m.screen != nil {
		display = m.screen.Render(m.cpu)
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		screenBox.Render(display),
		" ",
		m.status(),
	)
}

// Run starts the registered modules, drives the machine until the guest
// hits an illegal opcode or the operator quits, then stops the modules.
// The machine error, if any, is printed together with a register dump
// and returned. Exiting the process is the caller's call; status 0 on an
// illegal opcode keeps faith with older emulators.
//
// screen and keyboard may be nil for a headless machine; they must
// already be registered with AddModule.
func Run(c *cpu.Cpu, screen *device.Screen, keyboard *device.Keyboard) error {
	c.StartModules()
	defer c.StopModules()

	final, err := tea.NewProgram(model{
		cpu:      c,
		screen:   screen,
		keyboard: keyboard,
	}).Run()
	if err != nil {
		return err
	}

	if m := final.(model); m.err != nil {
		fmt.Println("machine stopped:", m.err)
		fmt.Print(spew.Sdump(struct {
			Reg            [8]uint16
			SP, PC, OV, IA uint16
		}{c.Reg, c.SP, c.PC, c.OV, c.IA}))
		return m.err
	}
	return nil
}
