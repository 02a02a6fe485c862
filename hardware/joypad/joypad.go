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

// Package joypad implements the eight keys of the DMG and the P1 register
// through which they are read.
//
// The keys are wired as a matrix of two lines of four keys. Line 0 holds the
// direction keys and line 1 holds the buttons. The program selects the lines
// to read by writing to bits 4 and 5 of P1, and reads the state of the keys
// on the selected lines from the lower four bits. As on the real hardware, a
// pressed key reads as zero.
package joypad

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// Key identifies one of the eight keys.
type Key int

// List of valid keys. The order of the keys defines their position in the
// key matrix.
const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumKeys
)

func (k Key) String() string {
	switch k {
	case Right:
		return "RIGHT"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "SELECT"
	case Start:
		return "START"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// number of keys on each line of the matrix
const lineLength = 4

// bits of P1 that select the lines
const (
	selectLine0 = 0x10
	selectLine1 = 0x20
	selectMask  = selectLine0 | selectLine1
)

// Event is a change of state of a key.
type Event struct {
	Key     Key
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s pressed", ev.Key)
	}
	return fmt.Sprintf("%s released", ev.Key)
}

// Joypad implements the P1 register.
type Joypad struct {
	irq interrupts.Requester

	// P1 is stored with positive logic. a set bit is a selected line or a
	// pressed key
	p1    uint8
	lines [2]uint8
}

// NewJoypad is the preferred method of initialisation of the Joypad type.
func NewJoypad(irq interrupts.Requester) *Joypad {
	return &Joypad{irq: irq}
}

func (pad *Joypad) String() string {
	return fmt.Sprintf("P1=%#02x line0=%04b line1=%04b", ^pad.p1, pad.lines[0], pad.lines[1])
}

// Reset releases all keys and deselects both lines.
func (pad *Joypad) Reset() {
	pad.p1 = 0
	pad.lines = [2]uint8{}
}

// Pressed returns true if the key is currently held down.
func (pad *Joypad) Pressed(k Key) bool {
	return pad.lines[k/lineLength]&(1<<(k%lineLength)) != 0
}

// KeyPressed changes the state of the key to pressed and requests the JOYPAD
// interrupt.
func (pad *Joypad) KeyPressed(k Key) {
	pad.lines[k/lineLength] |= 1 << (k % lineLength)
	pad.irq.RequestInterrupt(interrupts.Joypad)
	pad.update()
}

// KeyReleased changes the state of the key to released.
func (pad *Joypad) KeyReleased(k Key) {
	pad.lines[k/lineLength] &^= 1 << (k % lineLength)
	pad.update()
}

// HandleEvent applies the event to the joypad.
func (pad *Joypad) HandleEvent(ev Event) {
	if ev.Key < 0 || ev.Key >= NumKeys {
		return
	}
	if ev.Pressed {
		pad.KeyPressed(ev.Key)
	} else {
		pad.KeyReleased(ev.Key)
	}
}

func (pad *Joypad) update() {
	pad.p1 &= 0xf0
	if pad.p1&selectLine0 != 0 {
		pad.p1 |= pad.lines[0]
	}
	if pad.p1&selectLine1 != 0 {
		pad.p1 |= pad.lines[1]
	}
}

// Read implements the bus.Component interface.
func (pad *Joypad) Read(address uint16) (uint8, bool) {
	if address == addresses.P1 {
		return ^pad.p1, true
	}
	return 0, false
}

// Write implements the bus.Component interface. Only the line selection bits
// of P1 are writable.
func (pad *Joypad) Write(address uint16, data uint8) {
	if address == addresses.P1 {
		pad.p1 = ^data&selectMask | pad.p1&^selectMask
		pad.update()
	}
}
