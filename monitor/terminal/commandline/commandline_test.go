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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/monitor6502/monitor/terminal/commandline"
	"github.com/jetsetilly/monitor6502/test"
)

func TestTokeniser(t *testing.T) {
	tk := commandline.TokeniseInput("   break   $0400  A == $10   ")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "break")

	// hex notation is not normalised
	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "$0400")
	test.ExpectEquality(t, tk.Remainder(), "$0400  A == $10")

	tk.Get()
	test.ExpectFailure(t, tk.IsEnd())
	test.ExpectEquality(t, tk.Remainder(), "A == $10")

	for !tk.IsEnd() {
		tk.Get()
	}
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, tk.Remainder(), "")

	tk = commandline.TokeniseInput("")
	test.ExpectSuccess(t, tk.IsEnd())
	test.ExpectEquality(t, tk.Remainder(), "")
}

func TestTokeniserSpacing(t *testing.T) {
	// spacing inside the remainder is kept
	tk := commandline.TokeniseInput("b $10 A  ==\t1 ")
	tk.Get()
	tk.Get()
	test.ExpectEquality(t, tk.Remainder(), "A  ==\t1")

	s, _ := tk.Get()
	test.ExpectEquality(t, s, "A")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "==")
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "1")
	test.ExpectSuccess(t, tk.IsEnd())
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion(
		[]string{"dump", "disassemble", "trap", "step"},
		map[string][]string{"trap": {"read", "write", "readwrite"}},
	)

	completion := tc.Complete("d")
	test.ExpectEquality(t, completion, "DISASSEMBLE ")

	// next completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "DUMP ")

	// cycle back to the first completion option
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "DISASSEMBLE ")

	tc.Reset()
	completion = tc.Complete("trap rea")
	test.ExpectEquality(t, completion, "trap READ ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "trap READWRITE ")

	// no options for the third word
	tc.Reset()
	completion = tc.Complete("trap read fl")
	test.ExpectEquality(t, completion, "trap read fl")

	// no match
	tc.Reset()
	completion = tc.Complete("x")
	test.ExpectEquality(t, completion, "x")

	// single option does not cycle
	tc.Reset()
	completion = tc.Complete("st")
	test.ExpectEquality(t, completion, "STEP ")
	completion = tc.Complete(completion)
	test.ExpectEquality(t, completion, "STEP ")
}
