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

// NumOpcodes is the number of documented opcodes in the instruction set.
const NumOpcodes = 151

// the table of documented opcodes. BRK is encoded as a two byte instruction,
// the second byte being a padding byte that is skipped on return from the
// interrupt handler
var documented = []Definition{
	{0x69, Adc, 2, 2, Immediate, false, Read},
	{0x65, Adc, 2, 3, ZeroPage, false, Read},
	{0x75, Adc, 2, 4, ZeroPageX, false, Read},
	{0x6d, Adc, 3, 4, Absolute, false, Read},
	{0x7d, Adc, 3, 4, AbsoluteX, true, Read},
	{0x79, Adc, 3, 4, AbsoluteY, true, Read},
	{0x61, Adc, 2, 6, IndirectX, false, Read},
	{0x71, Adc, 2, 5, IndirectY, true, Read},

	{0x29, And, 2, 2, Immediate, false, Read},
	{0x25, And, 2, 3, ZeroPage, false, Read},
	{0x35, And, 2, 4, ZeroPageX, false, Read},
	{0x2d, And, 3, 4, Absolute, false, Read},
	{0x3d, And, 3, 4, AbsoluteX, true, Read},
	{0x39, And, 3, 4, AbsoluteY, true, Read},
	{0x21, And, 2, 6, IndirectX, false, Read},
	{0x31, And, 2, 5, IndirectY, true, Read},

	{0x0a, Asl, 1, 2, Accumulator, false, Modify},
	{0x06, Asl, 2, 5, ZeroPage, false, Modify},
	{0x16, Asl, 2, 6, ZeroPageX, false, Modify},
	{0x0e, Asl, 3, 6, Absolute, false, Modify},
	{0x1e, Asl, 3, 7, AbsoluteX, false, Modify},

	{0x90, Bcc, 2, 2, Relative, false, Flow},
	{0xb0, Bcs, 2, 2, Relative, false, Flow},
	{0xf0, Beq, 2, 2, Relative, false, Flow},
	{0x30, Bmi, 2, 2, Relative, false, Flow},
	{0xd0, Bne, 2, 2, Relative, false, Flow},
	{0x10, Bpl, 2, 2, Relative, false, Flow},
	{0x50, Bvc, 2, 2, Relative, false, Flow},
	{0x70, Bvs, 2, 2, Relative, false, Flow},

	{0x24, Bit, 2, 3, ZeroPage, false, Read},
	{0x2c, Bit, 3, 4, Absolute, false, Read},

	{0x00, Brk, 2, 7, Implied, false, Interrupt},

	{0x18, Clc, 1, 2, Implied, false, Read},
	{0xd8, Cld, 1, 2, Implied, false, Read},
	{0x58, Cli, 1, 2, Implied, false, Read},
	{0xb8, Clv, 1, 2, Implied, false, Read},

	{0xc9, Cmp, 2, 2, Immediate, false, Read},
	{0xc5, Cmp, 2, 3, ZeroPage, false, Read},
	{0xd5, Cmp, 2, 4, ZeroPageX, false, Read},
	{0xcd, Cmp, 3, 4, Absolute, false, Read},
	{0xdd, Cmp, 3, 4, AbsoluteX, true, Read},
	{0xd9, Cmp, 3, 4, AbsoluteY, true, Read},
	{0xc1, Cmp, 2, 6, IndirectX, false, Read},
	{0xd1, Cmp, 2, 5, IndirectY, true, Read},

	{0xe0, Cpx, 2, 2, Immediate, false, Read},
	{0xe4, Cpx, 2, 3, ZeroPage, false, Read},
	{0xec, Cpx, 3, 4, Absolute, false, Read},

	{0xc0, Cpy, 2, 2, Immediate, false, Read},
	{0xc4, Cpy, 2, 3, ZeroPage, false, Read},
	{0xcc, Cpy, 3, 4, Absolute, false, Read},

	{0xc6, Dec, 2, 5, ZeroPage, false, Modify},
	{0xd6, Dec, 2, 6, ZeroPageX, false, Modify},
	{0xce, Dec, 3, 6, Absolute, false, Modify},
	{0xde, Dec, 3, 7, AbsoluteX, false, Modify},

	{0xca, Dex, 1, 2, Implied, false, Read},
	{0x88, Dey, 1, 2, Implied, false, Read},

	{0x49, Eor, 2, 2, Immediate, false, Read},
	{0x45, Eor, 2, 3, ZeroPage, false, Read},
	{0x55, Eor, 2, 4, ZeroPageX, false, Read},
	{0x4d, Eor, 3, 4, Absolute, false, Read},
	{0x5d, Eor, 3, 4, AbsoluteX, true, Read},
	{0x59, Eor, 3, 4, AbsoluteY, true, Read},
	{0x41, Eor, 2, 6, IndirectX, false, Read},
	{0x51, Eor, 2, 5, IndirectY, true, Read},

	{0xe6, Inc, 2, 5, ZeroPage, false, Modify},
	{0xf6, Inc, 2, 6, ZeroPageX, false, Modify},
	{0xee, Inc, 3, 6, Absolute, false, Modify},
	{0xfe, Inc, 3, 7, AbsoluteX, false, Modify},

	{0xe8, Inx, 1, 2, Implied, false, Read},
	{0xc8, Iny, 1, 2, Implied, false, Read},

	{0x4c, Jmp, 3, 3, Absolute, false, Flow},
	{0x6c, Jmp, 3, 5, Indirect, false, Flow},

	{0x20, Jsr, 3, 6, Absolute, false, Subroutine},

	{0xa9, Lda, 2, 2, Immediate, false, Read},
	{0xa5, Lda, 2, 3, ZeroPage, false, Read},
	{0xb5, Lda, 2, 4, ZeroPageX, false, Read},
	{0xad, Lda, 3, 4, Absolute, false, Read},
	{0xbd, Lda, 3, 4, AbsoluteX, true, Read},
	{0xb9, Lda, 3, 4, AbsoluteY, true, Read},
	{0xa1, Lda, 2, 6, IndirectX, false, Read},
	{0xb1, Lda, 2, 5, IndirectY, true, Read},

	{0xa2, Ldx, 2, 2, Immediate, false, Read},
	{0xa6, Ldx, 2, 3, ZeroPage, false, Read},
	{0xb6, Ldx, 2, 4, ZeroPageY, false, Read},
	{0xae, Ldx, 3, 4, Absolute, false, Read},
	{0xbe, Ldx, 3, 4, AbsoluteY, true, Read},

	{0xa0, Ldy, 2, 2, Immediate, false, Read},
	{0xa4, Ldy, 2, 3, ZeroPage, false, Read},
	{0xb4, Ldy, 2, 4, ZeroPageX, false, Read},
	{0xac, Ldy, 3, 4, Absolute, false, Read},
	{0xbc, Ldy, 3, 4, AbsoluteX, true, Read},

	{0x4a, Lsr, 1, 2, Accumulator, false, Modify},
	{0x46, Lsr, 2, 5, ZeroPage, false, Modify},
	{0x56, Lsr, 2, 6, ZeroPageX, false, Modify},
	{0x4e, Lsr, 3, 6, Absolute, false, Modify},
	{0x5e, Lsr, 3, 7, AbsoluteX, false, Modify},

	{0xea, Nop, 1, 2, Implied, false, Read},

	{0x09, Ora, 2, 2, Immediate, false, Read},
	{0x05, Ora, 2, 3, ZeroPage, false, Read},
	{0x15, Ora, 2, 4, ZeroPageX, false, Read},
	{0x0d, Ora, 3, 4, Absolute, false, Read},
	{0x1d, Ora, 3, 4, AbsoluteX, true, Read},
	{0x19, Ora, 3, 4, AbsoluteY, true, Read},
	{0x01, Ora, 2, 6, IndirectX, false, Read},
	{0x11, Ora, 2, 5, IndirectY, true, Read},

	{0x48, Pha, 1, 3, Implied, false, Write},
	{0x08, Php, 1, 3, Implied, false, Write},
	{0x68, Pla, 1, 4, Implied, false, Read},
	{0x28, Plp, 1, 4, Implied, false, Read},

	{0x2a, Rol, 1, 2, Accumulator, false, Modify},
	{0x26, Rol, 2, 5, ZeroPage, false, Modify},
	{0x36, Rol, 2, 6, ZeroPageX, false, Modify},
	{0x2e, Rol, 3, 6, Absolute, false, Modify},
	{0x3e, Rol, 3, 7, AbsoluteX, false, Modify},

	{0x6a, Ror, 1, 2, Accumulator, false, Modify},
	{0x66, Ror, 2, 5, ZeroPage, false, Modify},
	{0x76, Ror, 2, 6, ZeroPageX, false, Modify},
	{0x6e, Ror, 3, 6, Absolute, false, Modify},
	{0x7e, Ror, 3, 7, AbsoluteX, false, Modify},

	{0x40, Rti, 1, 6, Implied, false, Interrupt},
	{0x60, Rts, 1, 6, Implied, false, Subroutine},

	{0xe9, Sbc, 2, 2, Immediate, false, Read},
	{0xe5, Sbc, 2, 3, ZeroPage, false, Read},
	{0xf5, Sbc, 2, 4, ZeroPageX, false, Read},
	{0xed, Sbc, 3, 4, Absolute, false, Read},
	{0xfd, Sbc, 3, 4, AbsoluteX, true, Read},
	{0xf9, Sbc, 3, 4, AbsoluteY, true, Read},
	{0xe1, Sbc, 2, 6, IndirectX, false, Read},
	{0xf1, Sbc, 2, 5, IndirectY, true, Read},

	{0x38, Sec, 1, 2, Implied, false, Read},
	{0xf8, Sed, 1, 2, Implied, false, Read},
	{0x78, Sei, 1, 2, Implied, false, Read},

	{0x85, Sta, 2, 3, ZeroPage, false, Write},
	{0x95, Sta, 2, 4, ZeroPageX, false, Write},
	{0x8d, Sta, 3, 4, Absolute, false, Write},
	{0x9d, Sta, 3, 5, AbsoluteX, false, Write},
	{0x99, Sta, 3, 5, AbsoluteY, false, Write},
	{0x81, Sta, 2, 6, IndirectX, false, Write},
	{0x91, Sta, 2, 6, IndirectY, false, Write},

	{0x86, Stx, 2, 3, ZeroPage, false, Write},
	{0x96, Stx, 2, 4, ZeroPageY, false, Write},
	{0x8e, Stx, 3, 4, Absolute, false, Write},

	{0x84, Sty, 2, 3, ZeroPage, false, Write},
	{0x94, Sty, 2, 4, ZeroPageX, false, Write},
	{0x8c, Sty, 3, 4, Absolute, false, Write},

	{0xaa, Tax, 1, 2, Implied, false, Read},
	{0xa8, Tay, 1, 2, Implied, false, Read},
	{0xba, Tsx, 1, 2, Implied, false, Read},
	{0x8a, Txa, 1, 2, Implied, false, Read},
	{0x9a, Txs, 1, 2, Implied, false, Read},
	{0x98, Tya, 1, 2, Implied, false, Read},
}

// the lookup table is indexed by opcode. undocumented opcodes are nil
var definitions [256]*Definition

func init() {
	for i := range documented {
		defn := &documented[i]
		definitions[defn.OpCode] = defn
	}
}

// GetDefinitions returns the opcode table. The returned slice is indexed by
// opcode and has an entry for every possible byte value. Entries for
// undocumented opcodes are nil.
//
// The table is shared and must not be modified.
func GetDefinitions() []*Definition {
	return definitions[:]
}

// Lookup returns the definition for the opcode. The boolean return value is
// false if the opcode is not a documented instruction.
func Lookup(opcode uint8) (*Definition, bool) {
	defn := definitions[opcode]
	return defn, defn != nil
}
