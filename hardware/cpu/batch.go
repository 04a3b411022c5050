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
	"context"

	"github.com/jetsetilly/monitor6502/curated"
	"github.com/jetsetilly/monitor6502/hardware/cpu/execution"
)

// RunImage executes instructions from address zero until the PC leaves the
// range of the image (size bytes from address zero). The onStep function, if
// not nil, is called after every instruction with the result of that
// instruction. An error from onStep stops execution and is returned.
//
// The context is checked between instructions. Execution also stops if an
// instruction runs off the top of memory and the PC wraps around to zero.
func (mc *CPU) RunImage(ctx context.Context, size int, onStep func(execution.Result) error) error {
	mc.PC.Load(0)

	for int(mc.PC.Address()) < size {
		select {
		case <-ctx.Done():
			return curated.Errorf("cpu: %v", ctx.Err())
		default:
		}

		err := mc.ExecuteInstruction()
		if err != nil {
			return err
		}

		if onStep != nil {
			err = onStep(mc.LastResult)
			if err != nil {
				return err
			}
		}

		// sequential execution past $ffff
		next := int(mc.LastResult.Address) + mc.LastResult.ByteCount
		if next > 0xffff && int(mc.PC.Address()) == next&0xffff {
			break
		}
	}

	return nil
}
