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

// Package alu contains the arithmetic and logic functions of the DMG CPU.
//
// Every function is pure and returns a Result, which packs the value of the
// operation together with the four condition flags. The flags occupy the upper
// four bits of the lowest byte, in the same positions as the F register, and
// the lower four bits of a Result are always zero. For example:
//
//	r := alu.Add(0x3a, 0xc6, false)
//	r.Value() // 0x00
//	r.Flags() // alu.Z | alu.H | alu.C
package alu

import "fmt"

// Flag is one of the four condition flags. The value of each flag is its
// position in the F register.
type Flag uint8

// List of condition flags.
const (
	C Flag = 1 << (4 + iota)
	H
	N
	Z
)

func (f Flag) String() string {
	switch f {
	case Z:
		return "Z"
	case N:
		return "N"
	case H:
		return "H"
	case C:
		return "C"
	}
	return fmt.Sprintf("flag(%#02x)", uint8(f))
}

// Direction of rotation.
type Direction int

// List of valid rotation directions.
const (
	Left Direction = iota
	Right
)

// Result packs a 16bit value and the condition flags. The value is in bits 8
// to 23 and the flags in bits 4 to 7.
type Result uint32

func (r Result) check() {
	if r&0x0f != 0 {
		panic(fmt.Sprintf("alu: packed result (%#06x) has unused bits set", uint32(r)))
	}
}

// Value returns the value part of the result. It panics if the result is
// malformed.
func (r Result) Value() uint16 {
	r.check()
	return uint16(r >> 8)
}

// Flags returns the condition flags part of the result as they would appear
// in the F register. It panics if the result is malformed.
func (r Result) Flags() uint8 {
	r.check()
	return uint8(r)
}

// Test returns the state of a single flag in the result.
func (r Result) Test(f Flag) bool {
	return r.Flags()&uint8(f) != 0
}

func (r Result) String() string {
	return fmt.Sprintf("%#04x [%s]", r.Value(), FlagString(r.Flags()))
}

// FlagString returns a readable representation of the flags byte, in the
// order ZNHC. Unset flags are shown in lower case.
func FlagString(flags uint8) string {
	s := []byte("znhc")
	for i, f := range []Flag{Z, N, H, C} {
		if flags&uint8(f) != 0 {
			s[i] -= 'a' - 'A'
		}
	}
	return string(s)
}

// MaskZNHC returns the flags byte for the four flag states.
func MaskZNHC(z, n, h, c bool) uint8 {
	var m uint8
	if z {
		m |= uint8(Z)
	}
	if n {
		m |= uint8(N)
	}
	if h {
		m |= uint8(H)
	}
	if c {
		m |= uint8(C)
	}
	return m
}

func pack(v uint16, flags uint8) Result {
	return Result(uint32(v)<<8 | uint32(flags))
}

func pack8(v uint8, z, n, h, c bool) Result {
	return pack(uint16(v), MaskZNHC(z, n, h, c))
}

// Add returns the sum of two bytes and an optional carry. H is set on a carry
// out of bit 3 and C on a carry out of bit 7.
func Add(l, r uint8, c0 bool) Result {
	var c uint
	if c0 {
		c = 1
	}
	sum := uint(l) + uint(r) + c
	h := uint(l&0x0f)+uint(r&0x0f)+c > 0x0f
	return pack8(uint8(sum), uint8(sum) == 0, false, h, sum > 0xff)
}

// Add16L adds two 16bit values. Z and N are always clear. H and C are those of
// the low byte addition. Used by the stack pointer instructions.
func Add16L(l, r uint16) Result {
	lo := Add(uint8(l), uint8(r), false)
	hi := Add(uint8(l>>8), uint8(r>>8), lo.Test(C))
	v := uint16(hi.Value())<<8 | lo.Value()
	return pack(v, MaskZNHC(false, false, lo.Test(H), lo.Test(C)))
}

// Add16H adds two 16bit values. Z and N are always clear. H and C are those of
// the high byte addition. Used by the HL instructions.
func Add16H(l, r uint16) Result {
	lo := Add(uint8(l), uint8(r), false)
	hi := Add(uint8(l>>8), uint8(r>>8), lo.Test(C))
	v := uint16(hi.Value())<<8 | lo.Value()
	return pack(v, MaskZNHC(false, false, hi.Test(H), hi.Test(C)))
}

// Sub returns the difference of two bytes and an optional borrow. N is always
// set. H is set on a borrow from bit 4 and C on a borrow from bit 8.
func Sub(l, r uint8, b0 bool) Result {
	var b int
	if b0 {
		b = 1
	}
	diff := int(l) - int(r) - b
	h := int(l&0x0f)-int(r&0x0f)-b < 0
	return pack8(uint8(diff), uint8(diff) == 0, true, h, diff < 0)
}

// BCDAdjust corrects the result of an addition or subtraction of two BCD
// values. The N, H and C arguments are the flags produced by that operation.
func BCDAdjust(v uint8, n, h, c bool) Result {
	fixL := h || (!n && v&0x0f > 0x09)
	fixH := c || (!n && v > 0x99)

	var fix uint8
	if fixH {
		fix |= 0x60
	}
	if fixL {
		fix |= 0x06
	}

	if n {
		v -= fix
	} else {
		v += fix
	}

	return pack8(v, v == 0, n, false, fixH)
}

// And returns the bitwise conjunction of two bytes. H is always set.
func And(l, r uint8) Result {
	v := l & r
	return pack8(v, v == 0, false, true, false)
}

// Or returns the bitwise disjunction of two bytes.
func Or(l, r uint8) Result {
	v := l | r
	return pack8(v, v == 0, false, false, false)
}

// Xor returns the exclusive disjunction of two bytes.
func Xor(l, r uint8) Result {
	v := l ^ r
	return pack8(v, v == 0, false, false, false)
}

// ShiftLeft shifts v one bit to the left. The ejected bit goes to C.
func ShiftLeft(v uint8) Result {
	s := v << 1
	return pack8(s, s == 0, false, false, v&0x80 != 0)
}

// ShiftRightA shifts v one bit to the right, preserving bit 7. The ejected bit
// goes to C.
func ShiftRightA(v uint8) Result {
	s := v>>1 | v&0x80
	return pack8(s, s == 0, false, false, v&0x01 != 0)
}

// ShiftRightL shifts v one bit to the right. The ejected bit goes to C.
func ShiftRightL(v uint8) Result {
	s := v >> 1
	return pack8(s, s == 0, false, false, v&0x01 != 0)
}

// Rotate rotates v one bit in the specified direction. The bit that wraps
// around is copied to C.
func Rotate(dir Direction, v uint8) Result {
	var r uint8
	var c bool
	if dir == Left {
		c = v&0x80 != 0
		r = v<<1 | v>>7
	} else {
		c = v&0x01 != 0
		r = v>>1 | v<<7
	}
	return pack8(r, r == 0, false, false, c)
}

// RotateCarry rotates the nine bit value formed by the carry and v one bit in
// the specified direction.
func RotateCarry(dir Direction, v uint8, c bool) Result {
	var in uint8
	var out bool
	var r uint8
	if dir == Left {
		if c {
			in = 0x01
		}
		out = v&0x80 != 0
		r = v<<1 | in
	} else {
		if c {
			in = 0x80
		}
		out = v&0x01 != 0
		r = v>>1 | in
	}
	return pack8(r, r == 0, false, false, out)
}

// Swap exchanges the upper and lower nibbles of v.
func Swap(v uint8) Result {
	s := v<<4 | v>>4
	return pack8(s, s == 0, false, false, false)
}

// TestBit returns a zero value with Z set if the indexed bit of v is clear. H
// is always set.
func TestBit(v uint8, index int) Result {
	if index < 0 || index > 7 {
		panic(fmt.Sprintf("alu: bit index (%d) out of range", index))
	}
	return pack8(0, v&(1<<index) == 0, false, true, false)
}
