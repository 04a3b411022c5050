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

// Package cpubus defines the interface between the CPU and memory. It also
// defines the addresses of the interrupt and reset vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address in the 16 bit address space is readable and writable so
// there is no error condition.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Addresses of the vectors at the top of memory. Each vector is a little
// endian 16 bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Stack is the page of memory used by the stack. The stack pointer is an
// offset into this page.
const Stack = uint16(0x0100)
