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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has been
	// "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information from a command
	StyleFeedback

	// disassembly output of the instruction just executed
	StyleCPUStep

	// information about the machine
	StyleInstrument

	// information from the logger
	StyleLog

	// information about the reason for the emulation halting
	StyleHalt

	// an error has occurred
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleFeedback:
		return "feedback"
	case StyleCPUStep:
		return "cpu step"
	case StyleInstrument:
		return "instrument"
	case StyleLog:
		return "log"
	case StyleHalt:
		return "halt"
	case StyleError:
		return "error"
	}
	return "unknown style"
}
