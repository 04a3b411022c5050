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

package memory

import (
	"github.com/jetsetilly/monitor6502/curated"
)

// Size of the address space.
const Size = 0x10000

// Sentinal error patterns returned by the memory package.
const (
	ImageTooLarge = "memory: image too large (%d bytes at %#04x)"
)

// Memory is the 64KB address space. The zero value is not usable; use
// NewMemory().
type Memory struct {
	data []uint8

	// the number of bytes in the most recently loaded image
	ImageSize int

	// the address at which the most recently loaded image begins
	ImageOrigin uint16
}

// NewMemory is the preferred method of initialisation for the Memory type. All
// memory is zeroed.
func NewMemory() *Memory {
	return &Memory{
		data: make([]uint8, Size),
	}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Clear sets all bytes in memory to zero. The image size is forgotten.
func (mem *Memory) Clear() {
	clear(mem.data)
	mem.ImageSize = 0
	mem.ImageOrigin = 0
}

// Load copies image into memory starting at origin. The image must fit in
// the address space without wrapping.
func (mem *Memory) Load(image []uint8, origin uint16) error {
	if int(origin)+len(image) > Size {
		return curated.Errorf(ImageTooLarge, len(image), origin)
	}
	copy(mem.data[origin:], image)
	mem.ImageSize = len(image)
	mem.ImageOrigin = origin
	return nil
}

// Snapshot creates a copy of memory. The copy is independent of the
// original.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.data = make([]uint8, Size)
	copy(n.data, mem.data)
	return &n
}
