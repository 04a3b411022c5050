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
	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/memory"
)

// Peeker is the memory access required by Linear(). Reading memory through a
// Peeker must not have side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Linear decodes instructions starting at origin until at least length bytes
// have been covered or the top of memory is reached. Every instruction is
// assumed to follow on from the previous one.
//
// Decoding happens on a private copy of memory with a CPU that does not
// honour flow control. Memory seen through the Peeker is never written to.
//
// the downside of this method is that data will often be decoded as though
// it were code.
func Linear(mem Peeker, origin uint16, length int, labels Labeller) ([]Entry, error) {
	if length <= 0 {
		return []Entry{}, nil
	}

	snapshot := memory.NewMemory()
	for a := 0; a < memory.Size; a++ {
		snapshot.Write(uint16(a), mem.Peek(uint16(a)))
	}

	mc := cpu.NewCPU(snapshot)
	mc.NoFlowControl = true

	entries := make([]Entry, 0, length)

	address := int(origin)
	for address < int(origin)+length && address < memory.Size {
		mc.PC.Load(uint16(address))

		// instructions that don't fit in memory are treated as data
		if err := mc.ExecuteInstruction(); err != nil || address+mc.LastResult.ByteCount > memory.Size {
			if err != nil && !curated.Is(err, cpu.UnknownOpcode) {
				return entries, err
			}
			entries = append(entries, dataEntry(uint16(address), snapshot.Read(uint16(address)), labels))
			address++
			continue // for loop
		}

		e := FormatResult(mc.LastResult, labels)
		entries = append(entries, e)
		address += e.Size
	}

	return entries, nil
}
