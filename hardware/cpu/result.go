// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
)

// Result records the most recent step taken by the CPU. A step is either the
// execution of an instruction or the servicing of an interrupt.
type Result struct {
	// the address of the instruction or the value of the PC at the time the
	// interrupt was serviced
	Address uint16

	// nil if the step serviced an interrupt
	Defn *instructions.Definition

	// the interrupt serviced by the step. only valid if Defn is nil
	Interrupt interrupts.Interrupt

	// number of machine cycles used by the step
	Cycles int
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x: interrupt %s (%d)", r.Address, r.Interrupt, r.Cycles)
	}
	return fmt.Sprintf("%04x: %s (%d)", r.Address, r.Defn.Mnemonic, r.Cycles)
}
