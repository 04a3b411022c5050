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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/memory"
	"github.com/jetsetilly/monitor6502/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	// memory is zeroed on creation
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)

	mem.Write(0xffff, 0x12)
	test.ExpectEquality(t, mem.Read(0xffff), 0x12)

	mem.Clear()
	test.ExpectEquality(t, mem.Read(0xffff), 0x00)
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Load([]uint8{0xa9, 0x01, 0x00}, 0x0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.ImageSize, 3)
	test.ExpectEquality(t, mem.Read(0x0000), 0xa9)
	test.ExpectEquality(t, mem.Read(0x0001), 0x01)

	// image fits exactly at the top of memory
	err = mem.Load([]uint8{0x01, 0x02}, 0xfffe)
	test.ExpectSuccess(t, err)

	// image does not fit
	err = mem.Load([]uint8{0x01, 0x02, 0x03}, 0xfffe)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x1000, 0x55)

	snap := mem.Snapshot()
	snap.Write(0x1000, 0xaa)
	test.ExpectEquality(t, mem.Read(0x1000), 0x55)
	test.ExpectEquality(t, snap.Read(0x1000), 0xaa)
}

func TestHexDump(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x01fe, 0x34)
	mem.Write(0x01ff, 0x12)

	w := &strings.Builder{}
	mem.HexDump(w, 0x01f8, 8)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[2], "01f0 | 00 00 00 00 00 00 00 00 00 00 00 00 00 00 34 12")
}
