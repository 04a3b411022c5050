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

package instructions

// AddressingMode describes the method of memory addressing used by an instruction.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate

	ZeroPage  // zpg
	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y

	Absolute  // abs
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	Indirect  // (ind)
	IndirectX // (ind,X)
	IndirectY // (ind),Y

	// relative addressing is used for branch instructions
	Relative
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case ZeroPage:
		return "zeropage"
	case ZeroPageX:
		return "zeropagex"
	case ZeroPageY:
		return "zeropagey"
	case Absolute:
		return "absolute"
	case AbsoluteX:
		return "absolutex"
	case AbsoluteY:
		return "absolutey"
	case Indirect:
		return "indirect"
	case IndirectX:
		return "indirectx"
	case IndirectY:
		return "indirecty"
	case Relative:
		return "relative"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of operand bytes that follow the opcode for
// the addressing mode. Note that BRK is an implied instruction but the
// instruction definition specifies two bytes.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	}
	return 1
}
