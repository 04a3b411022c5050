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

package cpu

import (
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
)

// RegisterNames lists the names accepted by RegisterValue().
var RegisterNames = []string{"A", "X", "Y", "SP", "PC"}

// RegisterValue returns the value of the named register. The stack pointer
// can be named S or SP. Names are not case sensitive. The boolean return
// value is false if the name is not recognised.
func (mc *CPU) RegisterValue(name string) (uint16, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return mc.A.Address(), true
	case "X":
		return mc.X.Address(), true
	case "Y":
		return mc.Y.Address(), true
	case "S", "SP":
		return mc.SP.Address(), true
	case "PC":
		return mc.PC.Address(), true
	}
	return 0, false
}

// FlagValue returns the state of the named status flag.
func (mc *CPU) FlagValue(name string) (bool, bool) {
	return mc.Status.Flag(name)
}

// Peek returns the value at the address without the access being recorded.
func (mc *CPU) Peek(address uint16) uint8 {
	return mc.mem.Read(address)
}

// Poke writes the value to the address without the access being recorded.
func (mc *CPU) Poke(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// Step executes the next instruction and returns the result.
func (mc *CPU) Step() (*execution.Result, error) {
	err := mc.ExecuteInstruction()
	if err != nil {
		return nil, err
	}
	return &mc.LastResult, nil
}

// CycleCount returns the number of cycles consumed since the CPU was created.
func (mc *CPU) CycleCount() uint64 {
	return mc.Cycles
}
