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

// breakpoints are used to halt execution when the PC reaches an address.
// compare to watchpoints which halt execution when a value changes and to
// trappoints which halt execution when a location is accessed.

package monitor

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// Breakpoint halts execution when the PC reaches Address. If Condition is
// not empty then execution only halts if the condition is true.
type Breakpoint struct {
	Address   uint16
	Condition string
	Enabled   bool
}

func (bp Breakpoint) String() string {
	s := fmt.Sprintf("$%04x", bp.Address)
	if bp.Condition != "" {
		s = fmt.Sprintf("%s if %s", s, bp.Condition)
	}
	if !bp.Enabled {
		s = fmt.Sprintf("%s (disabled)", s)
	}
	return s
}

// compareBreakpoints orders breakpoints by address.
func compareBreakpoints(a Breakpoint, b Breakpoint) int {
	return cmp.Compare(a.Address, b.Address)
}

// CreateBreakpoint adds a new breakpoint at the address, or updates an
// existing breakpoint at that address.
//
// If there is already a breakpoint at the address and the condition is
// different then the condition is replaced and the enabled state is left
// alone. If the condition is the same then the enabled state is toggled. An
// empty condition means there is no condition.
func (m *Monitor) CreateBreakpoint(address uint16, condition string) {
	for i := range m.breakpoints {
		if m.breakpoints[i].Address == address {
			if m.breakpoints[i].Condition != condition {
				m.breakpoints[i].Condition = condition
			} else {
				m.breakpoints[i].Enabled = !m.breakpoints[i].Enabled
			}
			return
		}
	}

	m.breakpoints = append(m.breakpoints, Breakpoint{
		Address:   address,
		Condition: condition,
		Enabled:   true,
	})
}

// Breakpoints returns a copy of the breakpoints sorted by address.
func (m *Monitor) Breakpoints() []Breakpoint {
	b := slices.Clone(m.breakpoints)
	slices.SortFunc(b, compareBreakpoints)
	return b
}

func (m *Monitor) listBreakpoints() {
	if len(m.breakpoints) == 0 {
		m.printLine(terminal.StyleFeedback, "no breakpoints")
		return
	}
	for _, bp := range m.Breakpoints() {
		m.printLine(terminal.StyleFeedback, bp.String())
	}
}

// checkBreakpoints returns the breakpoint at the current PC, if that
// breakpoint is enabled and its condition (if any) is true.
func (m *Monitor) checkBreakpoints() (Breakpoint, bool) {
	pc, _ := m.RegisterValue("PC")
	for _, bp := range m.breakpoints {
		if bp.Address != pc || !bp.Enabled {
			continue // for loop
		}
		if bp.Condition == "" || m.evaluate(bp.Condition) {
			return bp, true
		}
	}
	return Breakpoint{}, false
}
