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

// trappoints halt execution when a location is accessed. for memory
// addresses the access is either a read or a write. flags and registers can
// only be trapped when they are written to with a new value.

package monitor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// TrapType is the direction of access a trappoint is interested in.
type TrapType int

// List of valid TrapType values.
const (
	TrapRead TrapType = iota
	TrapWrite
	TrapReadWrite
)

func (t TrapType) String() string {
	switch t {
	case TrapRead:
		return "read"
	case TrapWrite:
		return "write"
	case TrapReadWrite:
		return "readwrite"
	}
	return "unknown trap type"
}

// ParseTrapType converts text to a TrapType. Accepted values are read,
// write and readwrite and the abbreviations r, w and rw. The text is not case
// sensitive.
func ParseTrapType(s string) (TrapType, bool) {
	switch strings.ToLower(s) {
	case "r", "read":
		return TrapRead, true
	case "w", "write":
		return TrapWrite, true
	case "rw", "readwrite":
		return TrapReadWrite, true
	}
	return TrapRead, false
}

// Trappoint traps accesses to a location. The Enabled field is informational
// only and does not affect whether a trap matches.
type Trappoint struct {
	Type     TrapType
	Location Location
	Enabled  bool
}

func (tp Trappoint) String() string {
	return fmt.Sprintf("%s %s", tp.Type, tp.Location)
}

// CreateTrappoint adds a trappoint for the location. The trap type is given
// as text and is parsed with ParseTrapType().
//
// Nothing happens if the trap type is not recognised or if no location is
// supplied. If there is already a trappoint for the location then the type of
// that trappoint is changed.
func (m *Monitor) CreateTrappoint(trapType string, loc *Location) {
	typ, ok := ParseTrapType(trapType)
	if !ok || loc == nil {
		return
	}

	for i := range m.traps {
		if m.traps[i].Location == *loc {
			m.traps[i].Type = typ
			return
		}
	}

	m.traps = append(m.traps, Trappoint{
		Type:     typ,
		Location: *loc,
		Enabled:  true,
	})
}

// Trappoints returns a copy of the trappoints in the order in which they
// were created.
func (m *Monitor) Trappoints() []Trappoint {
	return slices.Clone(m.traps)
}

func (m *Monitor) listTrappoints() {
	if len(m.traps) == 0 {
		m.printLine(terminal.StyleFeedback, "no traps")
		return
	}
	for i, tp := range m.traps {
		m.printLine(terminal.StyleFeedback, "% 2d: %s", i, tp)
	}
}

// trapValues records the current value of every trapped flag and register.
// addresses are matched with the memory accesses of an instruction and so
// are not recorded.
func (m *Monitor) trapValues() []uint16 {
	v := make([]uint16, len(m.traps))
	for i := range m.traps {
		if m.traps[i].Location.Type != LocationAddress {
			v[i] = m.locationValue(m.traps[i].Location)
		}
	}
	return v
}

// checkTrappoints looks for a trap matching the result of the most recent
// instruction. previous flag and register values are updated as a side
// effect.
func (m *Monitor) checkTrappoints(result *execution.Result, prev []uint16) (string, bool) {
	var s string
	var trapped bool

	for i, tp := range m.traps {
		if tp.Location.Type == LocationAddress {
			if trapped {
				continue // for loop
			}
			for _, a := range result.Accesses {
				if a.Address != tp.Location.Address {
					continue // for loop
				}
				if (a.Write && tp.Type != TrapRead) || (!a.Write && tp.Type != TrapWrite) {
					s = fmt.Sprintf("trap on %s (%s)", tp.Location, a)
					trapped = true
					break // for loop
				}
			}
			continue // for loop
		}

		v := m.locationValue(tp.Location)
		if v != prev[i] {
			if tp.Type != TrapRead && !trapped {
				s = fmt.Sprintf("trap on %s ($%02x -> $%02x)", tp.Location, prev[i], v)
				trapped = true
			}
			prev[i] = v
		}
	}

	return s, trapped
}
