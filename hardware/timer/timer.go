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

package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// the bit of the counter selected by the lower two bits of TAC
var tacBits = [4]int{9, 3, 5, 7}

// TIMA is only incremented while this bit of TAC is set
const tacEnable = 0x04

// Timer implements the timer registers DIV, TIMA, TMA and TAC.
type Timer struct {
	irq interrupts.Requester

	// the main counter. DIV is the upper byte
	Counter uint16

	TIMA uint8
	TMA  uint8
	TAC  uint8
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(irq interrupts.Requester) *Timer {
	return &Timer{irq: irq}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x", tmr.Counter>>8, tmr.TIMA, tmr.TMA, tmr.TAC)
}

// Reset the timer to the power-on state.
func (tmr *Timer) Reset() {
	tmr.Counter = 0
	tmr.TIMA = 0
	tmr.TMA = 0
	tmr.TAC = 0
}

// state is the input to the falling edge detector.
func (tmr *Timer) state() bool {
	if tmr.TAC&tacEnable == 0 {
		return false
	}
	return tmr.Counter&(1<<tacBits[tmr.TAC&0x03]) != 0
}

// incIfChange increments TIMA if the state has changed from true to false.
func (tmr *Timer) incIfChange(previous bool) {
	if !previous || tmr.state() {
		return
	}

	if tmr.TIMA == 0xff {
		tmr.irq.RequestInterrupt(interrupts.Timer)
		tmr.TIMA = tmr.TMA
	} else {
		tmr.TIMA++
	}
}

// Cycle implements the clocks.Clocked interface.
func (tmr *Timer) Cycle(_ uint64) error {
	s := tmr.state()
	tmr.Counter += 4
	tmr.incIfChange(s)
	return nil
}

// Read implements the bus.Component interface.
func (tmr *Timer) Read(address uint16) (uint8, bool) {
	switch address {
	case addresses.DIV:
		return uint8(tmr.Counter >> 8), true
	case addresses.TIMA:
		return tmr.TIMA, true
	case addresses.TMA:
		return tmr.TMA, true
	case addresses.TAC:
		return tmr.TAC, true
	}
	return 0, false
}

// Write implements the bus.Component interface.
func (tmr *Timer) Write(address uint16, data uint8) {
	switch address {
	case addresses.DIV:
		s := tmr.state()
		tmr.Counter = 0
		tmr.incIfChange(s)
	case addresses.TIMA:
		tmr.TIMA = data
	case addresses.TMA:
		tmr.TMA = data
	case addresses.TAC:
		s := tmr.state()
		tmr.TAC = data
		tmr.incIfChange(s)
	}
}
