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
	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/hardware/cpu/instructions"
)

// resolve the operand bytes of an instruction to an effective address and, if
// the instruction reads memory, the value at that address. for immediate and
// relative addressing the value is the operand byte and the address is
// meaningless
func (mc *CPU) resolve(defn *instructions.Definition, hi uint8, lo uint8) (uint16, uint8) {
	var address uint16
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0, 0

	case instructions.Immediate, instructions.Relative:
		return 0, lo

	case instructions.ZeroPage:
		address = uint16(lo)

	case instructions.ZeroPageX:
		// indexed zero page addresses never leave page zero
		address = uint16(lo + mc.X.Value())
		if uint16(lo)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageY:
		address = uint16(lo + mc.Y.Value())
		if uint16(lo)+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.Absolute:
		address = uint16(hi)<<8 | uint16(lo)

		// the absolute JMP takes the operand as a pointer to the real
		// address, with the same page wrap as the indirect form
		if defn.Operator == instructions.Jmp {
			var bug bool
			address, bug = mc.read16BitPageWrap(address)
			if bug {
				mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			}
		}

	case instructions.AbsoluteX:
		address = mc.indexed(uint16(hi)<<8|uint16(lo), mc.X.Address(), defn.PageSensitive)

	case instructions.AbsoluteY:
		address = mc.indexed(uint16(hi)<<8|uint16(lo), mc.Y.Address(), defn.PageSensitive)

	case instructions.Indirect:
		var bug bool
		address, bug = mc.read16BitPageWrap(uint16(hi)<<8 | uint16(lo))
		if bug {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

	case instructions.IndirectX:
		// the pointer is in page zero and the high byte of the pointer wraps
		// to the start of page zero
		ptr := lo + mc.X.Value()
		l := mc.read8Bit(uint16(ptr))
		h := mc.read8Bit(uint16(ptr + 1))
		address = uint16(h)<<8 | uint16(l)
		if ptr == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

	case instructions.IndirectY:
		l := mc.read8Bit(uint16(lo))
		h := mc.read8Bit(uint16(lo + 1))
		if lo == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
		}
		address = mc.indexed(uint16(h)<<8|uint16(l), mc.Y.Address(), defn.PageSensitive)
	}

	// only instructions that read memory access the effective address at
	// this stage
	switch defn.Effect {
	case instructions.Read, instructions.Modify:
		value = mc.read8Bit(address)
	}

	return address, value
}

// indexed adds the index to the base address with normal 16 bit wraparound.
// for page sensitive instructions, a change in the high byte costs an
// additional cycle
func (mc *CPU) indexed(base uint16, index uint16, pageSensitive bool) uint16 {
	address := base + index
	if pageSensitive && address&0xff00 != base&0xff00 {
		mc.LastResult.PageFault = true

		// +1 cycle
		mc.LastResult.Cycles++
	}
	return address
}
