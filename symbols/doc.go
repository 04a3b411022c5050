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

// Package symbols keeps track of the labels attached to addresses in the
// program being monitored. Labels can be added, removed and searched for, and
// can be read from a simple symbols file.
//
// Each line of a symbols file is a label followed by an address. The address
// is hexadecimal and can be prefixed with $ or 0x. Lines beginning with a
// semi-colon are ignored. For example:
//
//	; entry points
//	start  $0400
//	loop   0x0410
//	done   0423
package symbols
