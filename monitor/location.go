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

package monitor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/cpu/registers"
)

// LocationType identifies the kind of thing a Location refers to.
type LocationType int

// List of valid LocationType values.
const (
	LocationAddress LocationType = iota
	LocationFlag
	LocationRegister
)

func (t LocationType) String() string {
	switch t {
	case LocationAddress:
		return "address"
	case LocationFlag:
		return "flag"
	case LocationRegister:
		return "register"
	}
	return "unknown location type"
}

// Location is a memory address, a status flag or a register. Locations are
// comparable and are used as the keys of watchpoints and trappoints.
type Location struct {
	Type LocationType

	// Address is only used for LocationAddress
	Address uint16

	// Name is only used for LocationFlag and LocationRegister. it is always
	// upper case
	Name string
}

func (l Location) String() string {
	switch l.Type {
	case LocationFlag:
		return fmt.Sprintf("flag:%s", l.Name)
	case LocationRegister:
		return fmt.Sprintf("reg:%s", l.Name)
	}
	return fmt.Sprintf("$%04x", l.Address)
}

// parseHex parses a $ prefixed hexadecimal number of no more than four
// digits.
func parseHex(s string) (uint16, bool) {
	h, ok := strings.CutPrefix(s, "$")
	if !ok || len(h) == 0 || len(h) > 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// parseLocation parses a location token. Valid forms are
//
//	$HEX
//	flag:NAME
//	reg:NAME
//	register:NAME
//
// Flag and register names must be ones known to the CPU.
func parseLocation(s string) (Location, bool) {
	if addr, ok := parseHex(s); ok {
		return Location{Type: LocationAddress, Address: addr}, true
	}

	prefix, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return Location{}, false
	}
	name = strings.ToUpper(name)

	switch strings.ToLower(prefix) {
	case "flag":
		if slices.Contains(registers.FlagNames, name) {
			return Location{Type: LocationFlag, Name: name}, true
		}
	case "reg", "register":
		if name == "S" {
			name = "SP"
		}
		if slices.Contains(cpu.RegisterNames, name) {
			return Location{Type: LocationRegister, Name: name}, true
		}
	}

	return Location{}, false
}

// locationValue returns the current value of the location. flags are one or
// zero.
func (m *Monitor) locationValue(l Location) uint16 {
	switch l.Type {
	case LocationFlag:
		if v, _ := m.FlagValue(l.Name); v {
			return 1
		}
		return 0
	case LocationRegister:
		v, _ := m.RegisterValue(l.Name)
		return v
	}
	return uint16(m.Peek(l.Address))
}
