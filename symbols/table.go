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
	"sort"
	"strings"
)

// table maps a symbol to an address. it also keeps track of the widest symbol
// in the table.
type table struct {
	// symbols indexed by address
	byAddr map[uint16]string

	// sorted array of keys to the byAddr map
	sortedIdx []uint16

	// the longest symbol in the byAddr map
	maxWidth int
}

// newTable is the preferred method of initialisation for the table type.
func newTable() *table {
	return &table{
		byAddr:    make(map[uint16]string),
		sortedIdx: make([]uint16, 0),
	}
}

func (t *table) calcMaxWidth() {
	t.maxWidth = 0
	for _, s := range t.byAddr {
		if len(s) > t.maxWidth {
			t.maxWidth = len(s)
		}
	}
}

func (t table) String() string {
	s := strings.Builder{}
	for _, a := range t.sortedIdx {
		s.WriteString(fmt.Sprintf("$%04x -> %s\n", a, t.byAddr[a]))
	}
	return s.String()
}

// make sure symbol is normalised:
//
//	no leading or trailing space
//	internal space compressed and replaced with underscores
func normaliseSymbol(symbol string) string {
	return strings.Join(strings.Fields(symbol), "_")
}

// make sure symbol is unique in the table. the address the symbol is to be
// given is not considered a clash
func (t *table) uniqueSymbol(addr uint16, symbol string) string {
	unique := symbol

	add := 1
	_, a, ok := t.search(unique)
	for ok && a != addr {
		unique = fmt.Sprintf("%s_%d", symbol, add)
		add++
		_, a, ok = t.search(unique)
	}
	return unique
}

func (t *table) get(addr uint16) (string, bool) {
	v, ok := t.byAddr[addr]
	return v, ok
}

// add or replace entry. returns the symbol as stored in the table, which may
// differ from the symbol supplied
func (t *table) add(addr uint16, symbol string) (string, bool) {
	symbol = normaliseSymbol(symbol)
	if len(symbol) == 0 {
		return "", false
	}

	if _, ok := t.byAddr[addr]; !ok {
		t.sortedIdx = append(t.sortedIdx, addr)
		sort.Sort(t)
	}

	symbol = t.uniqueSymbol(addr, symbol)
	t.byAddr[addr] = symbol
	t.calcMaxWidth()

	return symbol, true
}

func (t *table) remove(addr uint16) bool {
	if _, ok := t.byAddr[addr]; !ok {
		return false
	}

	delete(t.byAddr, addr)
	for i := range t.sortedIdx {
		if t.sortedIdx[i] == addr {
			t.sortedIdx = append(t.sortedIdx[:i], t.sortedIdx[i+1:]...)
			break
		}
	}
	t.calcMaxWidth()

	return true
}

// search is not case sensitive
func (t table) search(symbol string) (string, uint16, bool) {
	symbol = strings.ToUpper(normaliseSymbol(symbol))

	for _, a := range t.sortedIdx {
		if strings.ToUpper(t.byAddr[a]) == symbol {
			return t.byAddr[a], a, true
		}
	}

	return "", 0, false
}

// Len implements the sort.Interface.
func (t table) Len() int {
	return len(t.sortedIdx)
}

// Less implements the sort.Interface.
func (t table) Less(i, j int) bool {
	return t.sortedIdx[i] < t.sortedIdx[j]
}

// Swap implements the sort.Interface.
func (t table) Swap(i, j int) {
	t.sortedIdx[i], t.sortedIdx[j] = t.sortedIdx[j], t.sortedIdx[i]
}
