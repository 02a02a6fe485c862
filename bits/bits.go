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

package bits

import (
	"fmt"
	mbits "math/bits"
)

// Unsigned is the set of types that the generic bit functions accept.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// width returns the number of bits in the type of v.
func width[T Unsigned](v T) int {
	switch any(v).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	}

	// the underlying type may not match the concrete type so fall back to
	// measuring the maximum value
	m := ^T(0)
	n := 0
	for m != 0 {
		m >>= 1
		n++
	}
	return n
}

func checkIndex(index int, size int) {
	if index < 0 || index >= size {
		panic(fmt.Sprintf("bits: bit index (%d) out of range for width %d", index, size))
	}
}

// Mask returns a 32bit value with only the indexed bit set.
func Mask(index int) uint32 {
	checkIndex(index, 32)
	return 1 << index
}

// Test returns true if the indexed bit in v is set.
func Test[T Unsigned](v T, index int) bool {
	checkIndex(index, width(v))
	return v&(1<<index) != 0
}

// Set returns v with the indexed bit set or cleared.
func Set[T Unsigned](v T, index int, on bool) T {
	checkIndex(index, width(v))
	if on {
		return v | (1 << index)
	}
	return v &^ (1 << index)
}

// Clip returns the lowest size bits of v. A size of 32 returns v unchanged.
func Clip(size int, v uint32) uint32 {
	if size < 0 || size > 32 {
		panic(fmt.Sprintf("bits: clip size (%d) out of range", size))
	}
	if size == 32 {
		return v
	}
	return v & ((1 << size) - 1)
}

// Extract returns size bits of v beginning at bit start.
func Extract(v uint32, start int, size int) uint32 {
	if start < 0 || size < 0 || start+size > 32 {
		panic(fmt.Sprintf("bits: extraction of %d bits at %d is out of range", size, start))
	}
	return Clip(size, v>>start)
}

// Rotate rotates the lowest size bits of v by distance. A positive distance
// rotates to the left and a negative distance rotates to the right. The bits
// of v above size must be zero.
func Rotate(size int, v uint32, distance int) uint32 {
	if size <= 0 || size > 32 {
		panic(fmt.Sprintf("bits: rotation size (%d) out of range", size))
	}
	if Clip(size, v) != v {
		panic(fmt.Sprintf("bits: value (%#x) is wider than rotation size %d", v, size))
	}

	d := distance % size
	if d < 0 {
		d += size
	}
	if d == 0 {
		return v
	}
	return Clip(size, v<<d|v>>(size-d))
}

// SignExtend8 interprets v as a two's complement byte.
func SignExtend8(v uint8) int {
	return int(int8(v))
}

// Complement8 returns the bitwise inverse of v.
func Complement8(v uint8) uint8 {
	return ^v
}

// Make16 joins two bytes into a 16bit value.
func Make16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Low returns the least significant byte of v.
func Low(v uint16) uint8 {
	return uint8(v)
}

// High returns the most significant byte of v.
func High(v uint16) uint8 {
	return uint8(v >> 8)
}

// Reverse8 returns v with bit 0 swapped with bit 7, bit 1 with bit 6, etc.
func Reverse8(v uint8) uint8 {
	return mbits.Reverse8(v)
}
