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
	"github.com/jetsetilly/monitor6502/hardware/memory/cpubus"
	"github.com/jetsetilly/monitor6502/logger"
)

// the number of cycles taken to service an interrupt
const interruptCycles = 7

// NMI services a non-maskable interrupt. The interrupt is serviced regardless
// of the state of the interrupt disable flag.
func (mc *CPU) NMI() {
	mc.interrupt(cpubus.NMI)
	logger.Logf(logger.Allow, "cpu", "NMI: PC loaded from vector (%#04x)", mc.PC.Address())
}

// IRQ services a maskable interrupt. Returns false if the interrupt was not
// serviced because interrupts are disabled.
func (mc *CPU) IRQ() bool {
	if mc.Status.InterruptDisable {
		return false
	}
	mc.interrupt(cpubus.IRQ)
	logger.Logf(logger.Allow, "cpu", "IRQ: PC loaded from vector (%#04x)", mc.PC.Address())
	return true
}

// interrupt pushes the PC and the status register (with the break flag
// cleared) before loading the PC from the vector. the stack accesses are not
// recorded in LastResult because they are not part of an instruction
func (mc *CPU) interrupt(vector uint16) {
	pc := mc.PC.Address()

	mc.mem.Write(cpubus.Stack|mc.SP.Address(), uint8(pc>>8))
	mc.SP.Decrement()
	mc.mem.Write(cpubus.Stack|mc.SP.Address(), uint8(pc))
	mc.SP.Decrement()
	mc.mem.Write(cpubus.Stack|mc.SP.Address(), mc.Status.Value()&^0x10)
	mc.SP.Decrement()

	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.peek16Bit(vector))
	mc.Cycles += interruptCycles
}
