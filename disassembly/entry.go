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
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
)

// Entry is a disassembled instruction. The constituent parts of the
// disassembly are stored as strings ready for display.
type Entry struct {
	Address  uint16
	Label    string
	Bytecode string
	Operator string
	Operand  string

	// the number of bytes in memory covered by the entry
	Size int

	// entries that could not be decoded are data
	Data bool
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// Labeller is used to find the label for an address. A nil Labeller is
// allowed wherever one is accepted.
type Labeller interface {
	GetLabel(addr uint16) (string, bool)
}

// FormatResult creates an Entry from the result of an instruction executed
// by the CPU. If the result is not final then the operator is ???.
func FormatResult(result execution.Result, labels Labeller) Entry {
	e := Entry{
		Address: result.Address,
		Size:    result.ByteCount,
	}

	if labels != nil {
		e.Label, _ = labels.GetLabel(result.Address)
	}

	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	b := result.Bytes()
	s := make([]string, len(b))
	for i := range b {
		s[i] = fmt.Sprintf("%02X", b[i])
	}
	e.Bytecode = strings.Join(s, " ")

	txt, err := Disassemble(result.Defn.OpCode, result.Operands[:]...)
	if err != nil {
		e.Operator = "???"
		return e
	}

	e.Operator, e.Operand, _ = strings.Cut(txt, " ")

	return e
}

// dataEntry creates an Entry for a byte that is not a valid instruction
func dataEntry(address uint16, value uint8, labels Labeller) Entry {
	e := Entry{
		Address:  address,
		Bytecode: fmt.Sprintf("%02X", value),
		Operator: ".byte",
		Operand:  fmt.Sprintf("$%02X", value),
		Size:     1,
		Data:     true,
	}
	if labels != nil {
		e.Label, _ = labels.GetLabel(address)
	}
	return e
}
