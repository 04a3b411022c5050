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

package monitor_test

import (
	"io"
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/memory"
	"github.com/jetsetilly/monitor6502/monitor"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// mockTerm implements the terminal.Terminal interface. input is returned one
// line at a time and output is collected.
type mockTerm struct {
	input  []string
	output []string
	styles []terminal.Style
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(trm.input) == 0 {
		return "", io.EOF
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	trm.output = append(trm.output, s)
	trm.styles = append(trm.styles, sty)
}

// contains returns true if any line of output contains the string
func (trm *mockTerm) contains(s string) bool {
	for _, l := range trm.output {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

// hasStyle returns true if any line of output was printed with the style
func (trm *mockTerm) hasStyle(sty terminal.Style) bool {
	for _, s := range trm.styles {
		if s == sty {
			return true
		}
	}
	return false
}

func (trm *mockTerm) clear() {
	trm.output = trm.output[:0]
	trm.styles = trm.styles[:0]
}

// newTestMonitor creates a monitor attached to a CPU. the program is placed
// at address zero, which is where the PC will be
func newTestMonitor(program ...uint8) (*monitor.Monitor, *cpu.CPU, *mockTerm) {
	mem := memory.NewMemory()
	for i, b := range program {
		mem.Write(uint16(i), b)
	}
	mc := cpu.NewCPU(mem)
	m := monitor.NewMonitor(mc, nil)
	trm := &mockTerm{}
	m.SetOutput(trm)
	return m, mc, trm
}

// hardwareOnly implements the Hardware interface but not the Executor
// interface
type hardwareOnly struct {
	mem [memory.Size]uint8
}

func (hw *hardwareOnly) RegisterValue(name string) (uint16, bool) {
	return 0, true
}

func (hw *hardwareOnly) FlagValue(name string) (bool, bool) {
	return false, true
}

func (hw *hardwareOnly) Peek(address uint16) uint8 {
	return hw.mem[address]
}

func (hw *hardwareOnly) Poke(address uint16, value uint8) {
	hw.mem[address] = value
}
