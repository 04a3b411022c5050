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
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
	"github.com/jetsetilly/monitor6502/monitor/terminal/commandline"
)

// Run is the interactive loop of the monitor. Commands are read from the
// terminal and the output of the commands is printed to it.
//
// Run returns when the terminal has no more input, when the user interrupts
// input or when the context is done. Errors from the CPU are printed and do
// not end the loop.
func (m *Monitor) Run(ctx context.Context, term terminal.Terminal) error {
	err := term.Initialise()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer term.CleanUp()

	m.SetOutput(term)
	defer m.SetOutput(nil)

	term.RegisterTabCompletion(commandline.NewTabCompletion(commandNames[:], map[string][]string{
		CmdTrap.String(): {"read", "write", "readwrite"},
	}))

	for {
		input, err := term.TermRead(m.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue // for loop
		}

		_, err = m.Execute(ctx, input)
		if err != nil {
			m.printLine(terminal.StyleError, "%v", err)
		}
	}
}

// prompt shows the address of the next instruction, with its label if it
// has one.
func (m *Monitor) prompt() terminal.Prompt {
	pc, _ := m.RegisterValue("PC")

	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("$%04x", pc),
	}

	if l, ok := m.labels.GetLabel(pc); ok {
		p.Content = fmt.Sprintf("%s %s", p.Content, l)
	}

	if m.halted {
		p.Type = terminal.PromptTypeHalted
	}

	return p
}
