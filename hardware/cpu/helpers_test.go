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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/memory"
)

// putInstructions places a sequence of bytes into memory starting at origin.
// returns the address following the last byte
func putInstructions(mem *memory.Memory, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

// put a little endian 16 bit value into memory
func putVector(mem *memory.Memory, address uint16, value uint16) {
	mem.Write(address, uint8(value))
	mem.Write(address+1, uint8(value>>8))
}

// newTestCPU creates a CPU with a fresh memory instance, with the PC set to
// origin
func newTestCPU(origin uint16) (*cpu.CPU, *memory.Memory) {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(mem)
	mc.PC.Load(origin)
	return mc, mem
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatalf("error during CPU step (%v)", err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("error during CPU step (%v)", err)
	}
}
