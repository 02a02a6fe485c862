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

// Package registers implements the register file of the DMG CPU.
package registers

import (
	"fmt"
	"strings"
)

// Register identifies one of the eight 8bit registers in the register file.
type Register int

// List of valid registers.
const (
	A Register = iota
	F
	B
	C
	D
	E
	H
	L
	NumRegisters
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case F:
		return "F"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	}
	return fmt.Sprintf("register(%d)", int(r))
}

// Pair identifies two registers that are used together as a 16bit value.
type Pair int

// List of valid register pairs.
const (
	AF Pair = iota
	BC
	DE
	HL
)

func (p Pair) String() string {
	switch p {
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	}
	return fmt.Sprintf("pair(%d)", int(p))
}

// the high and low registers of each pair
var pairs = [...][2]Register{
	AF: {A, F},
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
}

// the lower four bits of the F register are not connected
const flagsMask = 0xf0

// File is the bank of 8bit registers.
type File struct {
	cells [NumRegisters]uint8
}

func (f File) String() string {
	s := strings.Builder{}
	for r := A; r < NumRegisters; r++ {
		if r > A {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%#02x", r, f.cells[r]))
	}
	return s.String()
}

// Reset all registers to zero.
func (f *File) Reset() {
	f.cells = [NumRegisters]uint8{}
}

// Get the value of a register.
func (f *File) Get(r Register) uint8 {
	return f.cells[r]
}

// Set the value of a register. Writing to the F register discards the lower
// four bits.
func (f *File) Set(r Register, v uint8) {
	if r == F {
		v &= flagsMask
	}
	f.cells[r] = v
}

// Test returns the state of the indexed bit of the register.
func (f *File) Test(r Register, bit int) bool {
	checkBit(bit)
	return f.cells[r]&(1<<bit) != 0
}

// SetBit sets or clears the indexed bit of the register.
func (f *File) SetBit(r Register, bit int, on bool) {
	checkBit(bit)
	if on {
		f.Set(r, f.cells[r]|(1<<bit))
	} else {
		f.Set(r, f.cells[r]&^(1<<bit))
	}
}

// GetPair returns the 16bit value of a register pair.
func (f *File) GetPair(p Pair) uint16 {
	return uint16(f.cells[pairs[p][0]])<<8 | uint16(f.cells[pairs[p][1]])
}

// SetPair sets the 16bit value of a register pair. The lower four bits of
// AF are always zero.
func (f *File) SetPair(p Pair, v uint16) {
	f.Set(pairs[p][0], uint8(v>>8))
	f.Set(pairs[p][1], uint8(v))
}

func checkBit(bit int) {
	if bit < 0 || bit > 7 {
		panic(fmt.Sprintf("registers: bit index (%d) out of range", bit))
	}
}
