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
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/disassembly"
	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/hardware/memory"
	"github.com/jetsetilly/monitor6502/hardware/memory/cpubus"
	"github.com/jetsetilly/monitor6502/logger"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
)

// NotExecutable is returned when a command that executes instructions is
// used with hardware that does not implement the Executor interface.
const NotExecutable = "monitor: hardware cannot execute instructions"

// the maximum number of frames printed by the backtrace command
const maxBacktrace = 16

// Execute parses and runs a line of input. The boolean return value is false
// if the input is not a recognised command, in which case nothing happens.
//
// The error return value is the error from the CPU for commands that execute
// instructions.
func (m *Monitor) Execute(ctx context.Context, input string) (bool, error) {
	opts, ok := ParseCommand(input)
	if !ok {
		return false, nil
	}
	return true, m.Dispatch(ctx, opts)
}

// Dispatch runs the command described by the Options.
func (m *Monitor) Dispatch(ctx context.Context, opts Options) error {
	switch opts.Command {
	case CmdBreakpoint:
		if opts.List {
			m.listBreakpoints()
			return nil
		}
		if !opts.HasAddress {
			pc, _ := m.RegisterValue("PC")
			opts.Address = pc
		}
		m.CreateBreakpoint(opts.Address, opts.Condition)

	case CmdWatch:
		if opts.List {
			m.listWatchpoints()
			return nil
		}
		if opts.Location == nil {
			return nil
		}
		m.CreateWatchpoint(*opts.Location)

	case CmdTrap:
		if opts.List {
			m.listTrappoints()
			return nil
		}
		m.CreateTrappoint(opts.TrapType, opts.Location)

	case CmdContinue:
		return m.cont(ctx)

	case CmdStep:
		return m.step()

	case CmdBacktrace:
		m.backtrace()

	case CmdDump:
		m.dump()

	case CmdDisassemble:
		if !opts.HasAddress {
			pc, _ := m.RegisterValue("PC")
			opts.Address = pc
		}
		return m.disassemble(opts.Address, opts.ByteCount)

	case CmdLabel:
		m.label(opts)

	case CmdHelp:
		m.help()
	}

	return nil
}

// halt prints the reason for execution stopping and logs it.
func (m *Monitor) halt(reason string) {
	logger.Log(logger.Allow, "monitor", reason)
	m.printLine(terminal.StyleHalt, reason)
}

// cont executes instructions until a halt condition is met or the context is
// done. the interrupt signal cancels the context.
func (m *Monitor) cont(ctx context.Context) error {
	ex, ok := m.executor()
	if !ok {
		return curated.Errorf(NotExecutable)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	watchPrev := m.watchValues()
	trapPrev := m.trapValues()

	for {
		select {
		case <-ctx.Done():
			m.halt("interrupted")
			return nil
		default:
		}

		result, err := ex.Step()
		if err != nil {
			m.halted = true
			return err
		}
		m.halted = false

		if s, ok := m.checkTrappoints(result, trapPrev); ok {
			m.halt(s)
			break // for loop
		}

		if s, ok := m.checkWatchpoints(watchPrev); ok {
			m.halt(s)
			break // for loop
		}

		if bp, ok := m.checkBreakpoints(); ok {
			m.halt("break at " + bp.String())
			break // for loop
		}
	}

	m.printLine(terminal.StyleCPUStep, m.registersString())

	return nil
}

// step executes a single instruction and prints the disassembly of it.
func (m *Monitor) step() error {
	ex, ok := m.executor()
	if !ok {
		return curated.Errorf(NotExecutable)
	}

	result, err := ex.Step()
	if err != nil {
		m.halted = true
		return err
	}
	m.halted = false

	m.printResult(result)
	m.printLine(terminal.StyleCPUStep, m.registersString())

	return nil
}

func (m *Monitor) printResult(result *execution.Result) {
	e := disassembly.FormatResult(*result, m.labels)
	if e.Label != "" {
		m.printLine(terminal.StyleCPUStep, "%s:", e.Label)
	}
	m.printLine(terminal.StyleCPUStep, "$%04X  %-8s  %s", e.Address, e.Bytecode, e)
}

// backtrace prints the return addresses on the stack. every pair of bytes
// above the stack pointer is assumed to be a return address pushed by JSR.
func (m *Monitor) backtrace() {
	sp, _ := m.RegisterValue("SP")

	if sp >= 0xfe {
		m.printLine(terminal.StyleFeedback, "no return addresses on the stack")
		return
	}

	frame := 0
	for a := cpubus.Stack + sp + 1; a < cpubus.Stack+0xff && frame < maxBacktrace; a += 2 {
		lo := uint16(m.Peek(a))
		hi := uint16(m.Peek(a + 1))
		ret := (hi<<8 | lo) + 1

		if label, ok := m.labels.GetLabel(ret); ok {
			m.printLine(terminal.StyleInstrument, "#%d $%04x (%s)", frame, ret, label)
		} else {
			m.printLine(terminal.StyleInstrument, "#%d $%04x", frame, ret)
		}
		frame++
	}
}

// dump prints the registers, cycle count and the used part of the stack.
func (m *Monitor) dump() {
	m.printLine(terminal.StyleInstrument, m.registersString())
	m.printLine(terminal.StyleInstrument, "status: %s", m.statusString())

	if ex, ok := m.executor(); ok {
		m.printLine(terminal.StyleInstrument, "cycles: %d", ex.CycleCount())
	}

	sp, _ := m.RegisterValue("SP")
	if sp == 0xff {
		m.printLine(terminal.StyleInstrument, "stack: empty")
		return
	}

	m.printLine(terminal.StyleInstrument, "stack:")
	s := strings.Builder{}
	memory.Dump(&s, m.Peek, cpubus.Stack+sp+1, int(0xff-sp))
	m.printLines(terminal.StyleInstrument, s.String())
}

// disassemble prints the instructions in length bytes from address.
func (m *Monitor) disassemble(address uint16, length int) error {
	entries, err := disassembly.Linear(m.Hardware, address, length, m.labels)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	disassembly.Write(&s, entries, disassembly.WriteAttr{ByteCode: true})
	m.printLines(terminal.StyleFeedback, s.String())

	return nil
}

// label sets, removes or lists labels depending on the options.
func (m *Monitor) label(opts Options) {
	if opts.List {
		s := strings.Builder{}
		m.labels.ListLabels(&s)
		m.printLines(terminal.StyleFeedback, s.String())
		return
	}

	if opts.Label == "" {
		if m.labels.RemoveLabel(opts.Address) {
			m.printLine(terminal.StyleFeedback, "label removed from $%04x", opts.Address)
		} else {
			m.printLine(terminal.StyleFeedback, "no label at $%04x", opts.Address)
		}
		return
	}

	if l, ok := m.labels.AddLabel(opts.Address, opts.Label); ok {
		m.printLine(terminal.StyleFeedback, "$%04x labelled %s", opts.Address, l)
	}
}
