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
	"fmt"
	"io"
	"sync"
)

// Symbols contains all currently defined labels.
type Symbols struct {
	crit  sync.Mutex
	label *table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// In many instances however, ReadSymbolsFile() might be more appropriate.
func NewSymbols() *Symbols {
	return &Symbols{
		label: newTable(),
	}
}

// AddLabel adds a label for the address, replacing any existing label at that
// address. Whitespace in the label is replaced with underscores and the label
// is made unique by the addition of a numeric suffix if necessary. Returns the
// label as stored and false if the label was empty.
func (sym *Symbols) AddLabel(addr uint16, label string) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.add(addr, label)
}

// RemoveLabel removes the label for the address. Returns false if there was
// no label at that address.
func (sym *Symbols) RemoveLabel(addr uint16) bool {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.remove(addr)
}

// GetLabel returns the label for the address.
func (sym *Symbols) GetLabel(addr uint16) (string, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.get(addr)
}

// Search returns the address of the label. The search is not case sensitive.
func (sym *Symbols) Search(label string) (uint16, bool) {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	_, addr, ok := sym.label.search(label)
	return addr, ok
}

// LabelWidth returns the maximum number of characters required by a label.
func (sym *Symbols) LabelWidth() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.maxWidth
}

// Len returns the number of labels.
func (sym *Symbols) Len() int {
	sym.crit.Lock()
	defer sym.crit.Unlock()
	return sym.label.Len()
}

// Labels returns a copy of the label table. The keys are addresses.
func (sym *Symbols) Labels() map[uint16]string {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	m := make(map[uint16]string, len(sym.label.byAddr))
	for k, v := range sym.label.byAddr {
		m[k] = v
	}
	return m
}

// ListLabels outputs every label in address order.
func (sym *Symbols) ListLabels(w io.Writer) {
	sym.crit.Lock()
	defer sym.crit.Unlock()

	if sym.label.Len() == 0 {
		io.WriteString(w, "no labels\n")
		return
	}

	for _, a := range sym.label.sortedIdx {
		io.WriteString(w, fmt.Sprintf("$%04x  %s\n", a, sym.label.byAddr[a]))
	}
}
