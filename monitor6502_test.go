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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/monitor6502/modalflag"
	"github.com/jetsetilly/monitor6502/test"
	"github.com/jetsetilly/monitor6502/version"
)

// writeImage writes a program image to a temporary file and returns the
// filename
func writeImage(t *testing.T, program ...uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	err := os.WriteFile(fn, program, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

func launchArgs(t *testing.T, args ...string) (int, *test.CompareWriter) {
	t.Helper()
	tw := &test.CompareWriter{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	return launch(testContext(t), md), tw
}

func TestRunMode(t *testing.T) {
	fn := writeImage(t,
		0xa9, 0x05, // LDA #$05
		0xaa, // TAX
	)

	ret, tw := launchArgs(t, "RUN", fn)
	test.ExpectEquality(t, ret, exitOK)

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "PC=0003 A=05 X=05 Y=00 SP=ff SR=sv-bdizc")
	test.ExpectEquality(t, lines[1], "cycles: 4")
}

func TestRunModeUnknownOpcode(t *testing.T) {
	fn := writeImage(t, 0xea, 0x02)

	ret, tw := launchArgs(t, "run", fn)
	test.ExpectEquality(t, ret, exitError)

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "PC=0001 A=00 X=00 Y=00 SP=ff SR=sv-bdizc")
	test.ExpectEquality(t, lines[2], "* error in RUN mode: cpu: unknown opcode (0x02) at (0x0001)")
}

func TestDisasmMode(t *testing.T) {
	fn := writeImage(t,
		0xa9, 0x05, // LDA #$05
		0xaa, // TAX
	)

	ret, tw := launchArgs(t, "DISASM", "-bytecode", fn)
	test.ExpectEquality(t, ret, exitOK)

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "$0000  A9 05  LDA #$05")
	test.ExpectEquality(t, lines[1], "$0002  AA     TAX")

	// labels from a symbols file
	sym := filepath.Join(t.TempDir(), "program.sym")
	err := os.WriteFile(sym, []byte("start $0000\n"), 0o644)
	test.DemandSuccess(t, err)

	ret, tw = launchArgs(t, "DISASM", "-symbols", sym, fn)
	test.ExpectEquality(t, ret, exitOK)

	lines = tw.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "start:")
	test.ExpectEquality(t, lines[1], "$0000  LDA #$05")
}

func TestMissingImage(t *testing.T) {
	ret, tw := launchArgs(t, "RUN")
	test.ExpectEquality(t, ret, exitError)
	test.ExpectSuccess(t, tw.Compare("* error in RUN mode: program image required for RUN mode\n"))

	ret, _ = launchArgs(t, "RUN", filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectEquality(t, ret, exitError)

	ret, _ = launchArgs(t, "DISASM", "a.bin", "b.bin")
	test.ExpectEquality(t, ret, exitError)
}

func TestHelp(t *testing.T) {
	ret, tw := launchArgs(t, "-help")
	test.ExpectEquality(t, ret, exitOK)
	test.ExpectSuccess(t, len(tw.Lines()) > 0)
}

func TestVersionFlag(t *testing.T) {
	ret, tw := launchArgs(t, "-version")
	test.ExpectEquality(t, ret, exitOK)
	test.DemandEquality(t, len(tw.Lines()), 1)
	test.ExpectEquality(t, tw.Lines()[0], version.String())
}
