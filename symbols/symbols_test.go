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

package symbols

import (
	"strings"
	"testing"

	"github.com/jetsetilly/monitor6502/test"
)

func TestLabels(t *testing.T) {
	sym := NewSymbols()

	l, ok := sym.AddLabel(0x0400, "main loop")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "main_loop")

	// labels are unique
	l, ok = sym.AddLabel(0x0500, "MAIN_LOOP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "MAIN_LOOP_1")

	// replacing a label at the same address does not trigger the uniqueness
	// suffix
	l, ok = sym.AddLabel(0x0400, "main_loop")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "main_loop")

	_, ok = sym.AddLabel(0x0600, "   ")
	test.ExpectFailure(t, ok)

	addr, ok := sym.Search("Main_Loop")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, 0x0400)

	test.ExpectEquality(t, sym.Len(), 2)
	test.ExpectEquality(t, sym.LabelWidth(), 11)

	test.ExpectSuccess(t, sym.RemoveLabel(0x0500))
	test.ExpectFailure(t, sym.RemoveLabel(0x0500))
	_, ok = sym.GetLabel(0x0500)
	test.ExpectFailure(t, ok)
}

func TestListLabels(t *testing.T) {
	sym := NewSymbols()
	tw := &test.CompareWriter{}

	sym.ListLabels(tw)
	test.ExpectSuccess(t, tw.Compare("no labels\n"))

	sym.AddLabel(0x2000, "later")
	sym.AddLabel(0x0010, "first")
	tw.Clear()
	sym.ListLabels(tw)
	test.ExpectSuccess(t, tw.Compare("$0010  first\n$2000  later\n"))
}

func TestReadSymbols(t *testing.T) {
	const file = `; comment line
start  $0400
loop   0x0410
done   0423
bad    zzzz
single
`
	sym := NewSymbols()
	n, err := sym.read(strings.NewReader(file))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	l, ok := sym.GetLabel(0x0410)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "loop")

	l, _ = sym.GetLabel(0x0423)
	test.ExpectEquality(t, l, "done")

	sym, err = ReadSymbolsFile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sym.Len(), 0)

	_, err = ReadSymbolsFile("this file does not exist.sym")
	test.ExpectFailure(t, err)
}
