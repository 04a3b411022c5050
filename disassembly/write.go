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
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
}

// width of the bytecode column for a list of entries
func bytecodeWidth(entries []Entry) int {
	var w int
	for _, e := range entries {
		if len(e.Bytecode) > w {
			w = len(e.Bytecode)
		}
	}
	return w
}

// Write the entries to io.Writer in columns. Labels are written on a line of
// their own before the entry they refer to.
func Write(output io.Writer, entries []Entry, attr WriteAttr) {
	w := bytecodeWidth(entries)

	for _, e := range entries {
		if e.Label != "" {
			io.WriteString(output, fmt.Sprintf("%s:\n", e.Label))
		}

		io.WriteString(output, fmt.Sprintf("$%04X  ", e.Address))
		if attr.ByteCode {
			io.WriteString(output, fmt.Sprintf("%-*s  ", w, e.Bytecode))
		}
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
