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

// Package registers implements the three types of registers found in the 6502.
// The three types are the general purpose 8 bit register, the program counter
// and the status register.
//
// The general purpose register is also the arithmetic logic unit of the CPU.
// Arithmetic, bitwise, shift and compare operations are methods of the
// Register type and return the carry and overflow state produced by the
// operation. Setting of the status register flags is left to the caller. For
// instance, in the CPU, we might have this sequence of function calls:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// Decimal mode arithmetic is provided by the AddDecimal() and SubtractDecimal()
// functions. Unlike the binary functions, the decimal functions also return
// the zero and sign flags because in decimal mode these are computed from the
// intermediate binary result and not from the final register value.
package registers
