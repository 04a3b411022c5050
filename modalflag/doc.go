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

// Package modalflag wraps the flag package of the standard library, adding
// program modes. Each mode can have its own set of flags.
//
// Arguments are given with NewArgs() and then processed with Parse(). Any
// sub-modes must be declared with AddSubModes() before Parse() is called. The
// first sub-mode is the default and is used if the first non-flag argument
// does not name a mode.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "RUN", "DISASM")
//	p, err := md.Parse()
//
// Once the mode is known, NewMode() starts a new flag set for that mode and
// Parse() is called again.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log to stdout")
//		p, err := md.Parse()
//		...
//		image := md.GetArg(0)
//	}
//
// Mode names are not case sensitive. The Path() function returns every mode
// selected so far, separated with a slash.
package modalflag
