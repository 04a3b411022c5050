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

// Package cpu emulates the MOS 6502 microprocessor. The 6502 executes
// instructions according to the single byte value read from an address
// pointed to by the program counter. This single byte is the opcode and is
// looked up in the instruction table. The instruction definition for that
// opcode is then used to move execution of the program forward.
//
// An instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The memory package provides a
// flat 64KB implementation.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Let's assume mem is an instance of memory.Memory loaded with 6502
// instructions.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// The LastResult field can be inspected for information about the last
// instruction executed. Including the number of cycles taken and the memory
// accesses made. See the execution package for more information. Very useful
// for debuggers.
//
// The NoFlowControl flag is used by the disassembly package to prevent the CPU
// from honouring "flow control" instructions (ie. JMP, BNE, BEQ, etc.). See
// instructions package for classifications.
//
// The CPU type also implements the capability functions used by the monitor
// package: RegisterValue(), FlagValue(), Peek() and Poke().
package cpu
