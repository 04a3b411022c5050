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

// Package commandline facilitates the parsing of command line input. It
// divides input into tokens that can be walked through one at a time, and
// provides tab completion of command and argument keywords.
//
// Tokens are separated by white space. Unlike some command line parsers,
// tokens are not normalised in any way. Callers that need to treat a token as
// a number (or any other special form) should do so themselves.
//
//	tk := commandline.TokeniseInput("break $0400 A == 1")
//	cmd, _ := tk.Get()   // "break"
//	addr, _ := tk.Get()  // "$0400"
//	cond := tk.Remainder() // "A == 1"
package commandline
