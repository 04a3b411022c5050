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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/disassembly"
	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/memory"
	"github.com/jetsetilly/monitor6502/logger"
	"github.com/jetsetilly/monitor6502/modalflag"
	"github.com/jetsetilly/monitor6502/monitor"
	"github.com/jetsetilly/monitor6502/monitor/terminal"
	"github.com/jetsetilly/monitor6502/monitor/terminal/colorterm"
	"github.com/jetsetilly/monitor6502/monitor/terminal/plainterm"
	"github.com/jetsetilly/monitor6502/programloader"
	"github.com/jetsetilly/monitor6502/statsview"
	"github.com/jetsetilly/monitor6502/symbols"
	"github.com/jetsetilly/monitor6502/version"
)

// values used with os.Exit()
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(context.Background(), md))
}

// launch selects the mode and runs it. returns the program exit value.
func launch(ctx context.Context, md *modalflag.Modes) int {
	md.AddSubModes("MONITOR", "RUN", "DISASM")
	showVersion := md.AddBool("version", false, "show version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitArgs
	}

	if *showVersion {
		fmt.Fprintln(md.Output, version.String())
		return exitOK
	}

	logger.Logf(logger.Allow, "main", "%s mode", md.Mode())

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(ctx, md)
	case "RUN":
		err = run(ctx, md)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md, err)
		return exitError
	}

	return exitOK
}

// loadImage loads the program named by the only remaining argument into a
// new instance of memory.
func loadImage(md *modalflag.Modes, hash string) (*memory.Memory, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("program image required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	pl := programloader.NewLoader(md.GetArg(0))
	pl.Hash = hash

	mem := memory.NewMemory()
	err := pl.Attach(mem)
	if err != nil {
		return nil, err
	}

	return mem, nil
}

func monitorMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "PLAIN", "terminal type to use: PLAIN, COLOR")
	symbolsFile := md.AddString("symbols", "", "labels file to load")
	reset := md.AddBool("reset", false, "start from the reset vector rather than address zero")
	memvizFile := md.AddString("memviz", "", "write graph of monitor state to file on exit")
	stats := md.AddBool("statsview", false, "run stats server")
	hash := md.AddString("hash", "", "expected sha1 hash of program image")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := loadImage(md, *hash)
	if err != nil {
		return err
	}

	sym, err := symbols.ReadSymbolsFile(*symbolsFile)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, md.Output)
		if *log {
			logger.SetEcho(md.Output)
		}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
		if *log {
			logger.SetEcho(logger.NewColorizer(md.Output))
		}
	}
	defer logger.SetEcho(nil)

	if *stats {
		statsview.Launch(md.Output)
	}

	mc := cpu.NewCPU(mem)
	if *reset {
		mc.Reset()
	}

	mon := monitor.NewMonitor(mc, sym)
	defer mon.CleanUp()

	err = mon.Run(ctx, term)
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		mon.Graph(f)
	}

	return nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	stats := md.AddBool("statsview", false, "run stats server")
	hash := md.AddString("hash", "", "expected sha1 hash of program image")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
		defer logger.SetEcho(nil)
	}

	mem, err := loadImage(md, *hash)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	mc := cpu.NewCPU(mem)
	err = mc.RunImage(ctx, mem.ImageSize, nil)

	// registers are printed even if execution ended with an error
	fmt.Fprintln(md.Output, mc.String())
	fmt.Fprintf(md.Output, "cycles: %d\n", mc.Cycles)

	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	symbolsFile := md.AddString("symbols", "", "labels file to load")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := loadImage(md, "")
	if err != nil {
		return err
	}

	sym, err := symbols.ReadSymbolsFile(*symbolsFile)
	if err != nil {
		return err
	}

	entries, err := disassembly.Linear(cpu.NewCPU(mem), 0, mem.ImageSize, sym)

	// print what disassembly we do have, even if there was an error
	disassembly.Write(md.Output, entries, disassembly.WriteAttr{ByteCode: *bytecode})

	return err
}
