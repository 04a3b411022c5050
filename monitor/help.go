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
	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// help text for each command. indexed by Command
var helpText = [...]string{
	CmdBreakpoint:  "b|bp|break|breakpoint [$HEX] [condition]   set or toggle a breakpoint. list breakpoints with no arguments",
	CmdWatch:       "watch [$HEX|flag:NAME|reg:NAME]             set or toggle a watch. list watches with no arguments",
	CmdTrap:        "trap [r|w|rw] [$HEX|flag:NAME|reg:NAME]     set a trap or change its type. list traps with no arguments",
	CmdContinue:    "cont|continue                               run until a breakpoint, watch or trap",
	CmdStep:        "s|step|n|next                               execute one instruction",
	CmdBacktrace:   "bt|backtrace                                list return addresses on the stack",
	CmdDump:        "d|dump                                      show registers, cycles and stack",
	CmdDisassemble: "dis|disassemble [$HEX [bytes]] | [bytes]    disassemble memory (default PC, 16 bytes)",
	CmdLabel:       "label [$HEX [name]]                         set or remove a label. list labels with no arguments",
	CmdHelp:        "h|help|?                                    this help",
}

func (m *Monitor) help() {
	for _, s := range helpText {
		m.printLine(terminal.StyleHelp, s)
	}
	m.printLine(terminal.StyleHelp, "")
	m.printLine(terminal.StyleHelp, "conditions are Lua expressions. registers A X Y SP PC are numbers, flags N V B D I Z C")
	m.printLine(terminal.StyleHelp, "are booleans and peek($HEX) reads memory. eg. A == $10 and not Z")
}
