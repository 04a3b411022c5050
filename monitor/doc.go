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

// Package monitor implements an interactive debug monitor for the 6502
// emulation. The monitor keeps three collections of halt conditions:
//
//	breakpoints  halt when the PC reaches an address (optionally with a condition)
//	watchpoints  halt when the value at a location changes
//	trappoints   halt when a location is read or written
//
// Collections are only ever changed through the create-or-toggle functions:
// CreateBreakpoint(), CreateWatchpoint() and CreateTrappoint(). Nothing is ever
// removed from a collection automatically.
//
// The monitor reaches the emulated machine through the Hardware interface.
// Hardware that also implements Executor can be stepped and continued. The
// Hardware interface is embedded in the Monitor type so register, flag and
// memory access is available through the Monitor itself.
//
// Commands are parsed with ParseCommand() and the resulting Options are run
// with Dispatch(). Execute() combines the two. Unrecognised input is silently
// ignored. The Run() function is an interactive read-eval loop using a
// terminal.Terminal implementation.
package monitor
