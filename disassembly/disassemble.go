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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu/instructions"
)

// Sentinal errors returned by the disassembly package.
const (
	UnknownOpcode   = "disassembly: unknown opcode (%#02x)"
	MissingOperands = "disassembly: %s requires %d operand bytes (%d supplied)"
)

// Disassemble returns the assembly text for the opcode and operand bytes. The
// operand bytes are in the order they appear in memory (low byte first).
// Surplus operand bytes are ignored.
//
// Hexadecimal digits are upper case. The operand of a branch instruction is
// shown as the raw displacement.
func Disassemble(opcode uint8, operands ...uint8) (string, error) {
	defn, ok := instructions.Lookup(opcode)
	if !ok {
		return "", curated.Errorf(UnknownOpcode, opcode)
	}

	// BRK is a two byte instruction but the second byte is padding
	if defn.Operator == instructions.Brk {
		return defn.Mnemonic(), nil
	}

	n := defn.AddressingMode.OperandBytes()
	if len(operands) < n {
		return "", curated.Errorf(MissingOperands, defn.Mnemonic(), n, len(operands))
	}

	operand := formatOperand(defn.AddressingMode, operands)
	if operand == "" {
		return defn.Mnemonic(), nil
	}

	return fmt.Sprintf("%s %s", defn.Mnemonic(), operand), nil
}

// formatOperand decorates the operand with the addressing mode indicators.
// operands must contain at least as many bytes as the addressing mode requires
func formatOperand(mode instructions.AddressingMode, operands []uint8) string {
	var s string

	switch mode.OperandBytes() {
	case 1:
		s = fmt.Sprintf("$%02X", operands[0])
	case 2:
		s = fmt.Sprintf("$%04X", uint16(operands[1])<<8|uint16(operands[0]))
	}

	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return ""
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", s)
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", s)
	case instructions.IndirectX:
		s = fmt.Sprintf("(%s,X)", s)
	case instructions.IndirectY:
		s = fmt.Sprintf("(%s),Y", s)
	case instructions.AbsoluteX, instructions.ZeroPageX:
		s = fmt.Sprintf("%s,X", s)
	case instructions.AbsoluteY, instructions.ZeroPageY:
		s = fmt.Sprintf("%s,Y", s)
	}

	return s
}
