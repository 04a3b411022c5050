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

// Package disassembly turns 6502 machine code into assembly text.
//
// The Disassemble() function is a pure function that formats a single
// instruction from its opcode and operand bytes. It is used by the monitor to
// show the instruction being stepped.
//
// For longer listings, the Linear() function sweeps through memory from an
// origin address, decoding every instruction it encounters as though each one
// follows on from the last. Flow control is not followed. Bytes that do not
// decode to a documented opcode are listed as data.
//
// The Write() function prints a listing in columns, with labels taken from a
// symbols.Symbols instance.
package disassembly
