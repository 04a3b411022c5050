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

// Package memory implements the flat 64KB address space of a 6502 system. Every
// address is backed by RAM and there are no mirrors or memory mapped devices.
//
//	    CPU ---- cpu bus ---- MEMORY ---- debugger (Peek/Poke)
//
// The Memory type implements the cpubus.Memory interface. The debugger
// accesses memory through the same Read() and Write() functions. Memory is
// debug state that can be inspected and changed directly.
//
// A program image is loaded into memory with the Load() function. The size of
// the most recently loaded image is kept because it bounds the batch execution
// and disassembly of the program.
package memory
