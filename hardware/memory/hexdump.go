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
	"fmt"
	"io"
	"strings"
)

// HexDump writes a view of memory to io.Writer. The view covers length bytes
// from origin, rounded out to whole rows of sixteen bytes. Addresses beyond
// the top of memory wrap to the bottom.
func (mem *Memory) HexDump(w io.Writer, origin uint16, length int) {
	Dump(w, mem.Read, origin, length)
}

// Dump is the same as HexDump() but for memory that is only reachable
// through a peek function.
func Dump(w io.Writer, peek func(uint16) uint8, origin uint16, length int) {
	if length <= 0 {
		return
	}

	start := origin & 0xfff0
	end := int(origin) + length
	rows := (end - int(start) + 15) / 16

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < rows; y++ {
		row := start + uint16(y*16)
		s.WriteString(fmt.Sprintf("%04x |", row))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", peek(row+x)))
		}
		s.WriteString("\n")
	}

	io.WriteString(w, s.String())
}
