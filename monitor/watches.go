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

// watchpoints halt execution when the value of a location *changes* from the
// value it had when execution began.

package monitor

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// Watchpoint watches a single location for a change in value.
type Watchpoint struct {
	Location Location
	Enabled  bool
}

func (wp Watchpoint) String() string {
	if !wp.Enabled {
		return fmt.Sprintf("%s (disabled)", wp.Location)
	}
	return wp.Location.String()
}

// CreateWatchpoint adds a new watchpoint for the location. If there is
// already a watchpoint for the location then its enabled state is toggled.
func (m *Monitor) CreateWatchpoint(loc Location) {
	for i := range m.watches {
		if m.watches[i].Location == loc {
			m.watches[i].Enabled = !m.watches[i].Enabled
			return
		}
	}

	m.watches = append(m.watches, Watchpoint{
		Location: loc,
		Enabled:  true,
	})
}

// Watchpoints returns a copy of the watchpoints in the order in which they
// were created.
func (m *Monitor) Watchpoints() []Watchpoint {
	return slices.Clone(m.watches)
}

func (m *Monitor) listWatchpoints() {
	if len(m.watches) == 0 {
		m.printLine(terminal.StyleFeedback, "no watches")
		return
	}
	for i, wp := range m.watches {
		m.printLine(terminal.StyleFeedback, "% 2d: %s", i, wp)
	}
}

// watchValues records the current value of every watched location. the
// returned slice is indexed in the same way as the watches slice.
func (m *Monitor) watchValues() []uint16 {
	v := make([]uint16, len(m.watches))
	for i := range m.watches {
		v[i] = m.locationValue(m.watches[i].Location)
	}
	return v
}

// checkWatchpoints compares the value of every enabled watch with the
// previous values. the previous values are updated as a side effect. returns
// a description of the first change found.
func (m *Monitor) checkWatchpoints(prev []uint16) (string, bool) {
	var s string
	var changed bool

	for i := range m.watches {
		v := m.locationValue(m.watches[i].Location)
		if v == prev[i] {
			continue // for loop
		}
		if m.watches[i].Enabled && !changed {
			s = fmt.Sprintf("watch on %s ($%02x -> $%02x)", m.watches[i].Location, prev[i], v)
			changed = true
		}
		prev[i] = v
	}

	return s, changed
}
