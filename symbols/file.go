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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/logger"
)

// Sentinal errors returned when reading a symbols file.
const (
	FileError = "symbols: %v"
)

// ReadSymbolsFile initialises a Symbols instance from the named file. An
// empty filename results in an empty Symbols instance and no error.
func ReadSymbolsFile(filename string) (*Symbols, error) {
	sym := NewSymbols()

	if filename == "" {
		return sym, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return sym, curated.Errorf(FileError, err)
	}
	defer f.Close()

	n, err := sym.read(f)
	if err != nil {
		return sym, curated.Errorf(FileError, err)
	}

	logger.Logf(logger.Allow, "symbols", "%d labels read from %s", n, filename)

	return sym, nil
}

// read label definitions from the reader. lines that can not be parsed are
// skipped. returns the number of labels added
func (sym *Symbols) read(r io.Reader) (int, error) {
	var n int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		// ignore uninteresting lines
		p := strings.Fields(scanner.Text())
		if len(p) < 2 || strings.HasPrefix(p[0], ";") {
			continue // for loop
		}

		addr, ok := parseAddress(p[1])
		if !ok {
			continue // for loop
		}

		if _, ok := sym.AddLabel(addr, p[0]); ok {
			n++
		}
	}

	return n, scanner.Err()
}

// parseAddress accepts hexadecimal with an optional $ or 0x prefix.
func parseAddress(s string) (uint16, bool) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}
