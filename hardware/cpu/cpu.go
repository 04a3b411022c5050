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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
	"github.com/jetsetilly/monitor6502/hardware/cpu/instructions"
	"github.com/jetsetilly/monitor6502/hardware/cpu/registers"
	"github.com/jetsetilly/monitor6502/hardware/memory/cpubus"
	"github.com/jetsetilly/monitor6502/logger"
)

// UnknownOpcode is the pattern of the error returned when an opcode is
// encountered that is not in the instruction table.
const UnknownOpcode = "cpu: unknown opcode (%#02x) at (%#04x)"

// CPU implements the 6502 found as found in the Apple II, Commodore 64, and
// many others.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the number of cycles consumed since the CPU was created. interrupt
	// servicing is included
	Cycles uint64

	// accumulator used by read-modify-write instructions
	acc8 registers.Register

	mem cpubus.Memory

	// the result of the most recently executed instruction
	LastResult execution.Result

	// NoFlowControl sets whether the cpu responds accurately to instructions
	// that affect the flow of the program (branches, JMP, subroutines and
	// interrupts). this is useful for disassemblers which want to sweep
	// linearly through memory
	//
	// the program counter is still advanced by the length of the instruction
	NoFlowControl bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers are zeroed except the stack pointer, which is set to 0xff.
//
// Note that the reset vector is not consulted. Call Reset() to load the PC
// from the reset vector.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:  mem,
		PC:   registers.NewProgramCounter(0),
		A:    registers.NewRegister(0, "A"),
		X:    registers.NewRegister(0, "X"),
		Y:    registers.NewRegister(0, "Y"),
		SP:   registers.NewRegister(0xff, "SP"),
		acc8: registers.NewRegister(0, "acc"),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// Reset loads the PC from the reset vector and disables interrupts. Other
// registers are not affected.
func (mc *CPU) Reset() {
	mc.PC.Load(mc.peek16Bit(cpubus.Reset))
	mc.Status.InterruptDisable = true
	logger.Logf(logger.Allow, "cpu", "reset: PC loaded from vector (%#04x)", mc.PC.Address())
}

// read8Bit returns the 8 bit value from the specified address. the access is
// recorded in LastResult
func (mc *CPU) read8Bit(address uint16) uint8 {
	val := mc.mem.Read(address)
	mc.LastResult.Accesses = append(mc.LastResult.Accesses, execution.Access{
		Address: address,
		Value:   val,
	})
	return val
}

// write8Bit writes 8 bits to the specified address. the access is recorded in
// LastResult
func (mc *CPU) write8Bit(address uint16, val uint8) {
	mc.mem.Write(address, val)
	mc.LastResult.Accesses = append(mc.LastResult.Accesses, execution.Access{
		Address: address,
		Value:   val,
		Write:   true,
	})
}

// read16Bit returns the 16 bit little endian value from the specified address.
// the high byte is read from the next address with normal 16 bit wrap
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16BitPageWrap is like read16Bit except that the high byte is read from
// the same page as the low byte. this is the behaviour of the 6502 when
// reading the target of an indirect JMP
//
// returns true if the page wrap made a difference
func (mc *CPU) read16BitPageWrap(address uint16) (uint16, bool) {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address&0xff00 | (address+1)&0x00ff)
	return uint16(hi)<<8 | uint16(lo), address&0x00ff == 0x00ff
}

// peek16Bit is like read16Bit except that the access is not recorded. used
// when loading vectors outside of instruction execution
func (mc *CPU) peek16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// push a value onto the stack. the stack pointer wraps within page one
func (mc *CPU) push(val uint8) {
	mc.write8Bit(cpubus.Stack|mc.SP.Address(), val)
	mc.SP.Decrement()
}

// pull a value from the stack. the stack pointer wraps within page one
func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.read8Bit(cpubus.Stack | mc.SP.Address())
}

// branch to a new PC if flag is true. offset is the signed displacement from
// the PC, which has already been advanced past the branch instruction
func (mc *CPU) branch(flag bool, offset uint8) {
	if !flag {
		return
	}

	mc.LastResult.BranchSuccess = true

	// +1 cycle for successful branch
	mc.LastResult.Cycles++

	displacement := int(offset)
	if offset >= 0x80 {
		displacement = -int(^offset & 0xff)
	}

	address := uint16(int(mc.PC.Address()) + displacement)

	// +1 cycle if branch crosses a page boundary
	if address&0xff00 != mc.PC.Address()&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	if !mc.NoFlowControl {
		mc.PC.Load(address)
	}
}

// ExecuteInstruction fetches the instruction at the current PC, decodes it
// and executes it. The LastResult field is updated with the details of the
// execution.
//
// An opcode that is not in the instruction table results in an
// UnknownOpcode error. The PC is left pointing at the unknown opcode.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()

	address := mc.PC.Address()
	opcode := mc.mem.Read(address)

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		mc.LastResult.Address = address
		return curated.Errorf(UnknownOpcode, opcode, address)
	}

	// operand bytes are stored low byte first
	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = mc.mem.Read(address + 1)
	}
	if defn.Bytes > 2 {
		hi = mc.mem.Read(address + 2)
	}

	return mc.Execute(defn, hi, lo)
}

// Execute the instruction defined by defn with the supplied operand bytes.
// The PC should be pointing at the instruction's opcode, as though it had
// been fetched from memory. Operands are supplied high byte first; for two
// byte instructions the high byte is ignored.
func (mc *CPU) Execute(defn *instructions.Definition, hi uint8, lo uint8) error {
	if defn == nil {
		return curated.Errorf("cpu: cannot execute a nil instruction definition")
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = defn.Bytes
	mc.LastResult.Operands = [2]uint8{lo, hi}
	mc.LastResult.Cycles = defn.Cycles

	// the PC is advanced by the length of the instruction before the
	// instruction is executed. instructions that need the address of the
	// instruction compensate accordingly
	mc.PC.Add(uint16(defn.Bytes))

	address, value := mc.resolve(defn, hi, lo)

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		// break flag is always set in the pushed value. the live flag is
		// unaffected
		mc.push(mc.Status.Value() | 0x10)

	case instructions.Plp:
		mc.Status.Restore(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Increment()
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Increment()
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Decrement()
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Decrement()
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		r := mc.modifyTarget(defn, value)
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Lsr:
		r := mc.modifyTarget(defn, value)
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Rol:
		r := mc.modifyTarget(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Ror:
		r := mc.modifyTarget(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Inc:
		r := mc.modifyTarget(defn, value)
		r.Increment()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Dec:
		r := mc.modifyTarget(defn, value)
		r.Decrement()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Cmp:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.A.Compare(value)

	case instructions.Cpx:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.X.Compare(value)

	case instructions.Cpy:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.Y.Compare(value)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Jmp:
		if !mc.NoFlowControl {
			mc.PC.Load(address)
		}

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Jsr:
		if !mc.NoFlowControl {
			// the address pushed onto the stack is the address of the last
			// byte of the JSR instruction
			ret := mc.PC.Address() - 1
			mc.push(uint8(ret >> 8))
			mc.push(uint8(ret))
			mc.PC.Load(address)
		}

	case instructions.Rts:
		if !mc.NoFlowControl {
			lo := mc.pull()
			hi := mc.pull()
			mc.PC.Load((uint16(hi)<<8 | uint16(lo)) + 1)
		}

	case instructions.Brk:
		mc.Status.Break = true
		if !mc.NoFlowControl {
			mc.push(uint8(mc.PC.Address() >> 8))
			mc.push(uint8(mc.PC.Address()))
			mc.push(mc.Status.Value())
			mc.Status.InterruptDisable = true
			mc.PC.Load(mc.read16Bit(cpubus.IRQ))
		}

	case instructions.Rti:
		if !mc.NoFlowControl {
			mc.Status.Restore(mc.pull())
			lo := mc.pull()
			hi := mc.pull()
			mc.PC.Load(uint16(hi)<<8 | uint16(lo))
		}

	default:
		return curated.Errorf("cpu: unimplemented operator (%s)", defn.Operator)
	}

	// write altered value back to memory for RMW instructions
	if defn.Effect == instructions.Modify && defn.AddressingMode != instructions.Accumulator {
		mc.write8Bit(address, mc.acc8.Value())
	}

	mc.Cycles += uint64(mc.LastResult.Cycles)
	mc.LastResult.Final = true

	return nil
}

// modifyTarget returns the register to be used by a read-modify-write
// instruction. for accumulator addressing this is the A register, otherwise
// it is the internal acc8 register, loaded with the value read from memory
func (mc *CPU) modifyTarget(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}
