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

package cpu_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu"
	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/hardware/cpu/instructions"
	"github.com/jetsetilly/monitor6502/hardware/memory/cpubus"
	"github.com/jetsetilly/monitor6502/test"
)

func TestNewCPU(t *testing.T) {
	mc, _ := newTestCPU(0)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.PC.Address(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	test.ExpectEquality(t, mc.String(), "PC=0000 A=00 X=00 Y=00 SP=ff SR=sv-bdizc")
}

func TestReset(t *testing.T) {
	mc, mem := newTestCPU(0)
	putVector(mem, cpubus.Reset, 0xc000)
	mc.A.Load(0x55)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), 0xc000)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// registers are not affected by reset
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestADCBinary(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x69, 0x05)
	mc.A.Load(0x08)
	mc.Status.Carry = true

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0e)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.Cycles, 2)

	// signed overflow
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x69, 0x50)
	mc.A.Load(0x50)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdizc")

	// carry and zero
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x69, 0x01)
	mc.A.Load(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")
}

func TestADCDecimal(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xf8, 0x69, 0x05)
	mc.A.Load(0x08)
	mc.Status.Carry = true

	step(t, mc) // SED
	step(t, mc) // ADC #$05
	test.ExpectEquality(t, mc.A.Value(), 0x14)
	test.ExpectFailure(t, mc.Status.Carry)

	// carry out of the decimal range
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xf8, 0x69, 0x01)
	mc.A.Load(0x99)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestSBC(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x38, 0xe9, 0x01)
	mc.A.Load(0x00)
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")

	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xf8, 0x38, 0xe9, 0x01)
	mc.A.Load(0x10)
	step(t, mc) // SED
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x09)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestCompare(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xe0, 0x30, 0xe0, 0x40)
	mc.X.Load(0x30)

	step(t, mc) // CPX #$30
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)

	step(t, mc) // CPX #$40
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestBIT(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x24, 0x10)
	mem.Write(0x0010, 0xc0)
	mc.A.Load(0x01)

	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdiZc")
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func TestJMPPageWrap(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.Write(0x23ff, 0x20)
	mem.Write(0x2400, 0x01)
	mem.Write(0x2300, 0x77)
	putInstructions(mem, 0x0200, 0x4c, 0xff, 0x23)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x7720)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// same result when the instruction is supplied directly
	mc, mem = newTestCPU(0x0200)
	mem.Write(0x23ff, 0x20)
	mem.Write(0x2400, 0x01)
	mem.Write(0x2300, 0x77)
	defn, _ := instructions.Lookup(0x4c)
	err := mc.Execute(defn, 0x23, 0xff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), 0x7720)

	// and for the indirect form
	mc, mem = newTestCPU(0x0200)
	mem.Write(0x23ff, 0x20)
	mem.Write(0x2400, 0x01)
	mem.Write(0x2300, 0x77)
	putInstructions(mem, 0x0200, 0x6c, 0xff, 0x23)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x7720)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// no wrap when the pointer is not at the end of a page
	mc, mem = newTestCPU(0x0200)
	putVector(mem, 0x2310, 0x1234)
	putInstructions(mem, 0x0200, 0x4c, 0x10, 0x23)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestPCAdvance(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}

		mc, mem := newTestCPU(0x0200)
		mc.NoFlowControl = true
		putInstructions(mem, 0x0200, defn.OpCode)

		step(t, mc)
		test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(defn.Bytes), defn)
		test.ExpectEquality(t, mc.LastResult.ByteCount, defn.Bytes, defn)
	}
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xb5, 0x80, 0x96, 0xf0)
	mem.Write(0x007f, 0x42)
	mc.X.Load(0xff)
	mc.Y.Load(0x20)

	// LDA $80,X
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.DemandEquality(t, len(mc.LastResult.Accesses), 1)
	test.ExpectEquality(t, mc.LastResult.Accesses[0].Address, 0x007f)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// STX $f0,Y
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x0010), 0xff)
	test.ExpectEquality(t, mem.Read(0x0110), 0x00)

	// indexed indirect pointer wraps in page zero
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xa1, 0xfe)
	mc.X.Load(0x01)
	mem.Write(0x00ff, 0x34)
	mem.Write(0x0000, 0x12)
	mem.Write(0x1234, 0x99)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
}

func TestPageCross(t *testing.T) {
	// LDA $20f0,Y
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xb9, 0xf0, 0x20, 0xb9, 0xf0, 0x20)
	mem.Write(0x2110, 0x01)

	mc.Y.Load(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	mc.Y.Load(0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// STA $20f0,X is not page sensitive
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x9d, 0xf0, 0x20)
	mc.X.Load(0x20)
	mc.A.Load(0xaa)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectEquality(t, mem.Read(0x2110), 0xaa)

	// LDA ($10),Y
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xb1, 0x10)
	putVector(mem, 0x0010, 0x30ff)
	mem.Write(0x3100, 0x5a)
	mc.Y.Load(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x5a)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func TestBranching(t *testing.T) {
	// not taken
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xd0, 0x10)
	mc.Status.Zero = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)

	// taken, same page
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xd0, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0212)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)

	// taken, page crossed
	mc, mem = newTestCPU(0x02f0)
	putInstructions(mem, 0x02f0, 0xd0, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0312)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// negative displacement is the one's complement of the operand
	mc, mem = newTestCPU(0x0300)
	putInstructions(mem, 0x0300, 0x10, 0xfc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x02ff)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	mc, mem = newTestCPU(0x0310)
	putInstructions(mem, 0x0310, 0xb0, 0xf0)
	mc.Status.Carry = true
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0303)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
}

func TestStack(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x48, 0xa9, 0x00, 0x68)
	mc.A.Load(0x81)

	step(t, mc) // PHA
	test.ExpectEquality(t, mem.Read(0x01ff), 0x81)
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)

	step(t, mc) // LDA #$00
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")

	// stack pointer wraps within page one
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x48, 0x68)
	mc.SP.Load(0x00)
	mc.A.Load(0x11)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x0100), 0x11)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}

func TestPHPAndPLP(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x08, 0x28)
	mc.Status.Carry = true

	step(t, mc) // PHP
	test.ExpectEquality(t, mem.Read(0x01ff), 0x11)
	test.ExpectFailure(t, mc.Status.Break)

	// PLP never restores the break flag
	mem.Write(0x01ff, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "SV-bDIZC")
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x20, 0x00, 0x03)
	putInstructions(mem, 0x0300, 0x60)

	step(t, mc) // JSR $0300
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mem.Read(0x01ff), 0x02)
	test.ExpectEquality(t, mem.Read(0x01fe), 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestBRKAndRTI(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putVector(mem, cpubus.IRQ, 0x8000)
	putInstructions(mem, 0x0200, 0x00, 0xea)
	putInstructions(mem, 0x8000, 0x40)
	mc.Status.Carry = true

	step(t, mc) // BRK
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
	test.ExpectEquality(t, mem.Read(0x01ff), 0x02)
	test.ExpectEquality(t, mem.Read(0x01fe), 0x02)
	test.ExpectEquality(t, mem.Read(0x01fd), 0x11)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)

	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestInterrupts(t *testing.T) {
	mc, mem := newTestCPU(0x1234)
	putVector(mem, cpubus.NMI, 0x9000)
	putVector(mem, cpubus.IRQ, 0xa000)
	mc.Status.Break = true
	mc.Status.InterruptDisable = true

	// IRQ is masked
	test.ExpectFailure(t, mc.IRQ())
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.Cycles, 0)

	// NMI is not
	mc.NMI()
	test.ExpectEquality(t, mc.PC.Address(), 0x9000)
	test.ExpectEquality(t, mem.Read(0x01ff), 0x12)
	test.ExpectEquality(t, mem.Read(0x01fe), 0x34)
	test.ExpectEquality(t, mem.Read(0x01fd), 0x04)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mc.Cycles, 7)

	mc.Status.InterruptDisable = false
	test.ExpectSuccess(t, mc.IRQ())
	test.ExpectEquality(t, mc.PC.Address(), 0xa000)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mc.Cycles, 14)
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x06, 0x10, 0x0a)
	mem.Write(0x0010, 0x81)
	mc.A.Load(0x40)

	step(t, mc) // ASL $10
	test.ExpectEquality(t, mem.Read(0x0010), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.DemandEquality(t, len(mc.LastResult.Accesses), 2)
	test.ExpectFailure(t, mc.LastResult.Accesses[0].Write)
	test.ExpectSuccess(t, mc.LastResult.Accesses[1].Write)

	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// INC $ffff,X wraps around the address space
	mc, mem = newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0xfe, 0xff, 0xff)
	mc.X.Load(0x02)
	mem.Write(0x0001, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mem.Read(0x0001), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	putInstructions(mem, 0x0200, 0x02)

	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, err.Error(), "cpu: unknown opcode (0x02) at (0x0200)")
}

func TestRunImage(t *testing.T) {
	mc, mem := newTestCPU(0)
	image := []uint8{0xa9, 0x01, 0x69, 0x01, 0xaa}
	err := mem.Load(image, 0)
	test.DemandSuccess(t, err)

	var count int
	err = mc.RunImage(context.Background(), len(image), func(r execution.Result) error {
		count++
		return r.IsValid()
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 3)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.PC.Address(), 0x0005)

	// cancelled context stops execution before the first instruction
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = mc.RunImage(ctx, len(image), nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)

	// unknown opcodes stop the run
	mc, mem = newTestCPU(0)
	err = mem.Load([]uint8{0xea, 0x02}, 0)
	test.DemandSuccess(t, err)
	err = mc.RunImage(context.Background(), 2, nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
}

func TestRunImageKeepsAccesses(t *testing.T) {
	mc, mem := newTestCPU(0)

	// LDA $10; STA $20
	err := mem.Load([]uint8{0xa5, 0x10, 0x85, 0x20}, 0)
	test.DemandSuccess(t, err)
	mem.Write(0x0010, 0x42)

	var results []execution.Result
	err = mc.RunImage(context.Background(), 4, func(r execution.Result) error {
		results = append(results, r)
		return nil
	})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(results), 2)

	// results kept from earlier steps are not changed by later steps
	test.DemandEquality(t, len(results[0].Accesses), 1)
	test.ExpectEquality(t, results[0].Accesses[0].Address, 0x0010)
	test.ExpectEquality(t, results[0].Accesses[0].Value, 0x42)
	test.ExpectFailure(t, results[0].Accesses[0].Write)

	test.DemandEquality(t, len(results[1].Accesses), 1)
	test.ExpectEquality(t, results[1].Accesses[0].Address, 0x0020)
	test.ExpectSuccess(t, results[1].Accesses[0].Write)
}

func TestRunImageFullMemory(t *testing.T) {
	mc, mem := newTestCPU(0)

	image := make([]uint8, 0x10000)
	for i := range image {
		image[i] = 0xea
	}
	err := mem.Load(image, 0)
	test.DemandSuccess(t, err)

	var count int
	err = mc.RunImage(context.Background(), len(image), func(_ execution.Result) error {
		count++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 0x10000)
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)
}

func TestCapability(t *testing.T) {
	mc, _ := newTestCPU(0x1234)
	mc.SP.Load(0xf0)
	mc.Status.Zero = true

	v, ok := mc.RegisterValue("pc")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x1234)

	v, ok = mc.RegisterValue("S")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0xf0)

	_, ok = mc.RegisterValue("Q")
	test.ExpectFailure(t, ok)

	f, ok := mc.FlagValue("z")
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, f)

	mc.Poke(0x8000, 0x12)
	test.ExpectEquality(t, mc.Peek(0x8000), 0x12)
}
