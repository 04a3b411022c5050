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

package execution

import (
	"fmt"

	"github.com/jetsetilly/monitor6502/hardware/cpu/instructions"
)

// Access records a single memory access made by an instruction. The fetching
// of the instruction's opcode and operand bytes is not recorded.
type Access struct {
	Address uint16
	Value   uint8
	Write   bool
}

func (a Access) String() string {
	if a.Write {
		return fmt.Sprintf("write %02x to %04x", a.Value, a.Address)
	}
	return fmt.Sprintf("read %02x from %04x", a.Value, a.Address)
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// address of the instruction
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// operand bytes of the instruction in the order they appear in memory
	// (low byte first). only the first ByteCount-1 entries are meaningful
	Operands [2]uint8

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether branching instruction test succeeded
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// memory accesses made by the instruction
	Accesses []Access

	// whether this data has been finalised. some of the fields in this struct
	// will be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.ByteCount = 0
	r.Operands = [2]uint8{}
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = NoBug
	r.Accesses = nil
	r.Final = false
}

// InstructionData returns the operand of the instruction as a 16 bit value. For
// single byte operands the high byte is zero.
func (r Result) InstructionData() uint16 {
	switch r.ByteCount {
	case 2:
		return uint16(r.Operands[0])
	case 3:
		return uint16(r.Operands[1])<<8 | uint16(r.Operands[0])
	}
	return 0
}

// Bytes returns the instruction as it appears in memory, including the
// opcode.
func (r Result) Bytes() []uint8 {
	if r.Defn == nil || r.ByteCount == 0 {
		return []uint8{}
	}
	b := []uint8{r.Defn.OpCode}
	for i := 1; i < r.ByteCount; i++ {
		b = append(b, r.Operands[i-1])
	}
	return b
}
