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
	"strconv"
	"strings"

	"github.com/jetsetilly/monitor6502/monitor/terminal/commandline"
)

// Command identifies a monitor command.
type Command int

// List of monitor commands.
const (
	CmdBreakpoint Command = iota
	CmdWatch
	CmdTrap
	CmdContinue
	CmdStep
	CmdBacktrace
	CmdDump
	CmdDisassemble
	CmdLabel
	CmdHelp
)

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown command"
	}
	return commandNames[c]
}

// the canonical name of each command, indexed by Command
var commandNames = [...]string{
	"breakpoint", "watch", "trap", "continue", "step",
	"backtrace", "dump", "disassemble", "label", "help",
}

// every accepted spelling of every command. no other abbreviations are
// accepted
var commandTable = map[string]Command{
	"b":           CmdBreakpoint,
	"bp":          CmdBreakpoint,
	"break":       CmdBreakpoint,
	"breakpoint":  CmdBreakpoint,
	"watch":       CmdWatch,
	"trap":        CmdTrap,
	"cont":        CmdContinue,
	"continue":    CmdContinue,
	"s":           CmdStep,
	"step":        CmdStep,
	"n":           CmdStep,
	"next":        CmdStep,
	"bt":          CmdBacktrace,
	"backtrace":   CmdBacktrace,
	"d":           CmdDump,
	"dump":        CmdDump,
	"dis":         CmdDisassemble,
	"disassemble": CmdDisassemble,
	"label":       CmdLabel,
	"h":           CmdHelp,
	"help":        CmdHelp,
	"?":           CmdHelp,
}

// default number of bytes covered by the disassemble command
const defaultDisassemblyLength = 16

// Options is the result of parsing a command line. The fields that are
// meaningful depend on the Command.
type Options struct {
	Command Command

	// List is true if the command had no arguments. for the breakpoint,
	// watch, trap and label commands this means the collection should be
	// listed
	List bool

	// breakpoint, disassemble and label address
	Address    uint16
	HasAddress bool

	// watch and trap location. nil if no location was given
	Location *Location

	// trap type as it was typed. it is validated when the trap is created
	TrapType string

	// breakpoint and watch condition text
	Condition string

	// disassemble byte count
	ByteCount int

	// label name. an empty string when a label is to be removed
	Label string
}

// ParseCommand converts a line of input into an Options value. Commands and
// their arguments are not case sensitive. The boolean return value is false if
// the input is not a valid command.
func ParseCommand(input string) (Options, bool) {
	tokens := commandline.TokeniseInput(input)

	c, ok := tokens.Get()
	if !ok {
		return Options{}, false
	}

	cmd, ok := commandTable[strings.ToLower(c)]
	if !ok {
		return Options{}, false
	}

	opts := Options{
		Command: cmd,
		List:    tokens.IsEnd(),
	}

	switch cmd {
	case CmdBreakpoint:
		if tok, ok := tokens.Peek(); ok && strings.HasPrefix(tok, "$") {
			opts.Address, ok = parseHex(tok)
			if !ok {
				return Options{}, false
			}
			opts.HasAddress = true
			tokens.Get()
		}
		opts.Condition = tokens.Remainder()

	case CmdWatch:
		if tok, ok := tokens.Get(); ok {
			loc, ok := parseLocation(tok)
			if !ok {
				return Options{}, false
			}
			opts.Location = &loc
		}
		opts.Condition = tokens.Remainder()

	case CmdTrap:
		if tok, ok := tokens.Get(); ok {
			if loc, ok := parseLocation(tok); ok {
				opts.Location = &loc
			} else {
				opts.TrapType = tok
				if tok, ok := tokens.Get(); ok {
					loc, ok := parseLocation(tok)
					if !ok {
						return Options{}, false
					}
					opts.Location = &loc
				}
			}
		}

	case CmdDisassemble:
		opts.ByteCount = defaultDisassemblyLength
		if tok, ok := tokens.Get(); ok {
			if strings.HasPrefix(tok, "$") {
				opts.Address, ok = parseHex(tok)
				if !ok {
					return Options{}, false
				}
				opts.HasAddress = true
				tok, ok = tokens.Get()
				if !ok {
					break // switch
				}
			}

			n, err := strconv.ParseUint(tok, 10, 16)
			if err != nil || n == 0 {
				return Options{}, false
			}
			opts.ByteCount = int(n)
		}

	case CmdLabel:
		if tok, ok := tokens.Get(); ok {
			opts.Address, ok = parseHex(tok)
			if !ok {
				return Options{}, false
			}
			opts.HasAddress = true
			opts.Label = tokens.Remainder()
		}
	}

	return opts, true
}
