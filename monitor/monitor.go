// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/hardware/cpu/registers"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
	"github.com/jetsetilly/monitor6502/symbols"
)

// Hardware defines the access the monitor has to the emulated machine.
type Hardware interface {
	RegisterValue(name string) (uint16, bool)
	FlagValue(name string) (bool, bool)
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// Executor is implemented by Hardware that can be stepped one instruction at
// a time.
type Executor interface {
	Step() (*execution.Result, error)
	CycleCount() uint64
}

// Monitor is the debug monitor. It should be instantiated with NewMonitor()
// rather than directly.
type Monitor struct {
	Hardware

	breakpoints []Breakpoint
	watches     []Watchpoint
	traps       []Trappoint

	labels *symbols.Symbols

	// conditions are compiled and evaluated on demand
	cond *conditions

	// where command output is sent. replaced by the terminal in Run()
	output terminal.Output

	// the most recent instruction or continue ended in an error
	halted bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The symbols argument can be nil.
func NewMonitor(hw Hardware, sym *symbols.Symbols) *Monitor {
	if sym == nil {
		sym = symbols.NewSymbols()
	}

	return &Monitor{
		Hardware:    hw,
		breakpoints: make([]Breakpoint, 0, 10),
		watches:     make([]Watchpoint, 0, 10),
		traps:       make([]Trappoint, 0, 10),
		labels:      sym,
		output:      discard{},
	}
}

// SetOutput changes where command output is sent.
func (m *Monitor) SetOutput(output terminal.Output) {
	if output == nil {
		output = discard{}
	}
	m.output = output
}

// Labels returns the symbols table used by the monitor.
func (m *Monitor) Labels() *symbols.Symbols {
	return m.labels
}

// CleanUp releases any resources held by the monitor.
func (m *Monitor) CleanUp() {
	if m.cond != nil {
		m.cond.close()
		m.cond = nil
	}
}

// executor returns the Executor implementation of the hardware, if there is
// one.
func (m *Monitor) executor() (Executor, bool) {
	ex, ok := m.Hardware.(Executor)
	return ex, ok
}

func (m *Monitor) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	m.output.TermPrintLine(sty, s)
}

// print every line of a multiline string.
func (m *Monitor) printLines(sty terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		m.output.TermPrintLine(sty, l)
	}
}

// statusString is the status register in the same form as the CPU's own
// String() function. flags that are set are upper case.
func (m *Monitor) statusString() string {
	s := strings.Builder{}
	for _, f := range registers.FlagNames {
		// bit 5 sits between the V and B flags
		if f == "B" {
			s.WriteRune('-')
		}
		v, _ := m.FlagValue(f)
		if v {
			s.WriteString(f)
		} else {
			s.WriteString(strings.ToLower(f))
		}
	}
	return s.String()
}

// registersString summarises the registers of the hardware on one line.
func (m *Monitor) registersString() string {
	pc, _ := m.RegisterValue("PC")
	a, _ := m.RegisterValue("A")
	x, _ := m.RegisterValue("X")
	y, _ := m.RegisterValue("Y")
	sp, _ := m.RegisterValue("SP")
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", pc, a, x, y, sp, m.statusString())
}

// discard is the output used when there is no terminal.
type discard struct{}

func (discard) TermPrintLine(terminal.Style, string) {}
