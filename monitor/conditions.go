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
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/cpu/registers"
	"github.com/jetsetilly/monitor6502/logger"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
	lua "github.com/yuin/gopher-lua"
)

// ConditionError is returned when a condition cannot be evaluated.
const ConditionError = "condition: %v"

// conditions evaluates condition text as a Lua expression. Registers are
// available as number globals and flags as boolean globals. Memory can be
// read with the peek() function. Hexadecimal numbers can be written with
// the $ prefix. For example
//
//	A == $10 and Z
//	peek($0400) ~= 0 or X > 3
//
// The != operator is accepted as an alternative to ~=
type conditions struct {
	hw Hardware
	L  *lua.LState
}

func newConditions(hw Hardware) *conditions {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// only the base and math libraries are useful in a condition
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// conditions must not reach the filesystem
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)

	cnd := &conditions{
		hw: hw,
		L:  L,
	}

	L.SetGlobal("peek", L.NewFunction(cnd.peek))

	return cnd
}

func (cnd *conditions) close() {
	cnd.L.Close()
}

func (cnd *conditions) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	L.Push(lua.LNumber(cnd.hw.Peek(uint16(address))))
	return 1
}

// set the register and flag globals to the current state of the hardware
func (cnd *conditions) update() {
	for _, r := range cpu.RegisterNames {
		v, _ := cnd.hw.RegisterValue(r)
		cnd.L.SetGlobal(r, lua.LNumber(v))
	}

	// S is an alias of SP
	sp, _ := cnd.hw.RegisterValue("SP")
	cnd.L.SetGlobal("S", lua.LNumber(sp))

	for _, f := range registers.FlagNames {
		v, _ := cnd.hw.FlagValue(f)
		cnd.L.SetGlobal(f, lua.LBool(v))
	}
}

// normalise condition text into valid Lua
func normaliseCondition(condition string) string {
	condition = strings.ReplaceAll(condition, "$", "0x")
	condition = strings.ReplaceAll(condition, "!=", "~=")
	return condition
}

// evaluate the condition. the result is converted to a boolean using the
// normal Lua rules. ie. only nil and false are false.
func (cnd *conditions) evaluate(condition string) (bool, error) {
	cnd.update()

	fn, err := cnd.L.LoadString("return (" + normaliseCondition(condition) + ")")
	if err != nil {
		return false, curated.Errorf(ConditionError, err)
	}

	cnd.L.Push(fn)
	err = cnd.L.PCall(0, 1, nil)
	if err != nil {
		return false, curated.Errorf(ConditionError, err)
	}

	ret := cnd.L.Get(-1)
	cnd.L.Pop(1)

	return lua.LVAsBool(ret), nil
}

// evaluate a condition for the monitor. a condition that cannot be evaluated
// is treated as being true so that execution halts and the problem can be
// seen.
func (m *Monitor) evaluate(condition string) bool {
	if m.cond == nil {
		m.cond = newConditions(m.Hardware)
	}

	ok, err := m.cond.evaluate(condition)
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
		m.printLine(terminal.StyleError, "%v", err)
		return true
	}
	return ok
}
