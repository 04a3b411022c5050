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
	"testing"

	"github.com/jetsetilly/monitor6502/monitor"
	"github.com/jetsetilly/monitor6502/test"
)

func TestBreakpointToggle(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)

	m.CreateBreakpoint(0x0400, "")
	bps := m.Breakpoints()
	test.DemandEquality(t, len(bps), 1)
	test.ExpectSuccess(t, bps[0].Enabled)

	// same address, same (absent) condition toggles
	m.CreateBreakpoint(0x0400, "")
	bps = m.Breakpoints()
	test.DemandEquality(t, len(bps), 1)
	test.ExpectFailure(t, bps[0].Enabled)

	// different condition replaces the condition but does not toggle
	m.CreateBreakpoint(0x0400, "A == $10")
	bps = m.Breakpoints()
	test.DemandEquality(t, len(bps), 1)
	test.ExpectEquality(t, bps[0].Condition, "A == $10")
	test.ExpectFailure(t, bps[0].Enabled)

	// same condition toggles again
	m.CreateBreakpoint(0x0400, "A == $10")
	bps = m.Breakpoints()
	test.ExpectSuccess(t, bps[0].Enabled)

	// removing the condition is also a change of condition
	m.CreateBreakpoint(0x0400, "")
	bps = m.Breakpoints()
	test.ExpectEquality(t, bps[0].Condition, "")
	test.ExpectSuccess(t, bps[0].Enabled)
}

func TestBreakpointConditionSpacing(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)
	m.SetOutput(&mockTerm{})

	m.Execute(testContext(t), "b $0010 A  ==  1")
	bps := m.Breakpoints()
	test.DemandEquality(t, len(bps), 1)
	test.ExpectEquality(t, bps[0].Condition, "A  ==  1")
	test.ExpectSuccess(t, bps[0].Enabled)

	// the condition text differs so it is replaced rather than toggled
	m.Execute(testContext(t), "b $0010 A == 1")
	bps = m.Breakpoints()
	test.DemandEquality(t, len(bps), 1)
	test.ExpectEquality(t, bps[0].Condition, "A == 1")
	test.ExpectSuccess(t, bps[0].Enabled)

	// identical text toggles
	m.Execute(testContext(t), "b $0010 A == 1")
	bps = m.Breakpoints()
	test.ExpectFailure(t, bps[0].Enabled)
}

func TestBreakpointOrder(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)
	m.CreateBreakpoint(0x0500, "")
	m.CreateBreakpoint(0x0100, "")
	m.CreateBreakpoint(0xff00, "")
	m.CreateBreakpoint(0x0400, "")

	bps := m.Breakpoints()
	test.DemandEquality(t, len(bps), 4)
	test.ExpectEquality(t, bps[0].Address, 0x0100)
	test.ExpectEquality(t, bps[1].Address, 0x0400)
	test.ExpectEquality(t, bps[2].Address, 0x0500)
	test.ExpectEquality(t, bps[3].Address, 0xff00)

	trm := &mockTerm{}
	m.SetOutput(trm)
	m.Execute(testContext(t), "bp")
	test.DemandEquality(t, len(trm.output), 4)
	test.ExpectEquality(t, trm.output[0], "$0100")
	test.ExpectEquality(t, trm.output[3], "$ff00")
}

func TestWatchpoints(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)

	addr := monitor.Location{Type: monitor.LocationAddress, Address: 0x80}
	flag := monitor.Location{Type: monitor.LocationFlag, Name: "Z"}

	m.CreateWatchpoint(addr)
	m.CreateWatchpoint(flag)
	wps := m.Watchpoints()
	test.DemandEquality(t, len(wps), 2)
	test.ExpectEquality(t, wps[0].Location, addr)
	test.ExpectEquality(t, wps[1].Location, flag)
	test.ExpectSuccess(t, wps[0].Enabled)

	// existing key toggles
	m.CreateWatchpoint(addr)
	wps = m.Watchpoints()
	test.DemandEquality(t, len(wps), 2)
	test.ExpectFailure(t, wps[0].Enabled)
	test.ExpectSuccess(t, wps[1].Enabled)

	// a register with the same name as a flag is a different key
	m.CreateWatchpoint(monitor.Location{Type: monitor.LocationRegister, Name: "PC"})
	test.ExpectEquality(t, len(m.Watchpoints()), 3)
}

func TestTrappoints(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)

	loc := monitor.Location{Type: monitor.LocationAddress, Address: 0x0400}

	// unrecognised trap type and unseen location
	m.CreateTrappoint("sideways", &loc)
	test.ExpectEquality(t, len(m.Trappoints()), 0)

	// valid type but no location
	m.CreateTrappoint("read", nil)
	test.ExpectEquality(t, len(m.Trappoints()), 0)

	m.CreateTrappoint("r", &loc)
	tps := m.Trappoints()
	test.DemandEquality(t, len(tps), 1)
	test.ExpectEquality(t, tps[0].Type, monitor.TrapRead)
	test.ExpectSuccess(t, tps[0].Enabled)

	// existing key overwrites the type and does not toggle
	m.CreateTrappoint("WRITE", &loc)
	tps = m.Trappoints()
	test.DemandEquality(t, len(tps), 1)
	test.ExpectEquality(t, tps[0].Type, monitor.TrapWrite)
	test.ExpectSuccess(t, tps[0].Enabled)

	// unrecognised trap type with an existing key changes nothing
	m.CreateTrappoint("x", &loc)
	tps = m.Trappoints()
	test.DemandEquality(t, len(tps), 1)
	test.ExpectEquality(t, tps[0].Type, monitor.TrapWrite)

	reg := monitor.Location{Type: monitor.LocationRegister, Name: "A"}
	m.CreateTrappoint("rw", &reg)
	tps = m.Trappoints()
	test.DemandEquality(t, len(tps), 2)
	test.ExpectEquality(t, tps[1].Type, monitor.TrapReadWrite)
	test.ExpectEquality(t, tps[1].Location, reg)
}

func TestTrapCommandRejection(t *testing.T) {
	m := monitor.NewMonitor(&hardwareOnly{}, nil)

	ok, err := m.Execute(testContext(t), "trap bogus $0400")
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m.Trappoints()), 0)

	ok, _ = m.Execute(testContext(t), "trap read")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(m.Trappoints()), 0)

	ok, _ = m.Execute(testContext(t), "trap $0400")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(m.Trappoints()), 0)

	ok, _ = m.Execute(testContext(t), "trap rw flag:c")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(m.Trappoints()), 1)
}
