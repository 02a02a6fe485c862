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

// Package interrupts lists the interrupt sources of the DMG and defines the
// interface used by peripherals to raise them.
package interrupts

import "fmt"

// Interrupt identifies an interrupt source. The value of an Interrupt is also
// its bit index in the IE and IF registers. Lower values have higher
// priority.
type Interrupt int

// List of interrupt sources.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumInterrupts
)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBLANK"
	case LCDStat:
		return "LCD_STAT"
	case Timer:
		return "TIMER"
	case Serial:
		return "SERIAL"
	case Joypad:
		return "JOYPAD"
	}
	return fmt.Sprintf("interrupt(%d)", int(i))
}

// Vector returns the address that the CPU jumps to when servicing the
// interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x40 + uint16(i)*8
}

// Mask returns the bit of the IE and IF registers for the interrupt.
func (i Interrupt) Mask() uint8 {
	return 1 << i
}

// Requester is implemented by the CPU. Peripherals use it to raise an
// interrupt. Requesting an interrupt never blocks.
type Requester interface {
	RequestInterrupt(Interrupt)
}
