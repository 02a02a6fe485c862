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
	"strings"
)

// WordSize is the number of bits in each word of a Vector. The size of every
// Vector must be a multiple of WordSize.
const WordSize = 32

// Vector is an immutable sequence of bits. Bit zero is the least significant
// bit of the first word.
//
// The zero value is a Vector of size zero and is only useful as a placeholder.
type Vector struct {
	words []uint32
}

func checkSize(size int) {
	if size <= 0 || size%WordSize != 0 {
		panic(fmt.Sprintf("bits: vector size (%d) must be a positive multiple of %d", size, WordSize))
	}
}

// NewVector creates a vector of size bits, with every bit set to the initial
// value.
func NewVector(size int, initial bool) Vector {
	checkSize(size)
	v := Vector{words: make([]uint32, size/WordSize)}
	if initial {
		for i := range v.words {
			v.words[i] = ^uint32(0)
		}
	}
	return v
}

// Size of the vector in bits.
func (v Vector) Size() int {
	return len(v.words) * WordSize
}

// TestBit returns the state of the indexed bit.
func (v Vector) TestBit(index int) bool {
	if index < 0 || index >= v.Size() {
		panic(fmt.Sprintf("bits: vector index (%d) out of range for size %d", index, v.Size()))
	}
	return v.words[index/WordSize]&(1<<(index%WordSize)) != 0
}

// Equal returns true if both vectors are the same size and have the same bits
// set.
func (v Vector) Equal(o Vector) bool {
	if len(v.words) != len(o.words) {
		return false
	}
	for i := range v.words {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Not returns the inverse of the vector.
func (v Vector) Not() Vector {
	n := Vector{words: make([]uint32, len(v.words))}
	for i, w := range v.words {
		n.words[i] = ^w
	}
	return n
}

func (v Vector) checkOperand(o Vector) {
	if len(v.words) != len(o.words) {
		panic(fmt.Sprintf("bits: vector sizes differ (%d and %d)", v.Size(), o.Size()))
	}
}

// And returns the conjunction of the two vectors, which must be the same size.
func (v Vector) And(o Vector) Vector {
	v.checkOperand(o)
	n := Vector{words: make([]uint32, len(v.words))}
	for i := range v.words {
		n.words[i] = v.words[i] & o.words[i]
	}
	return n
}

// Or returns the disjunction of the two vectors, which must be the same size.
func (v Vector) Or(o Vector) Vector {
	v.checkOperand(o)
	n := Vector{words: make([]uint32, len(v.words))}
	for i := range v.words {
		n.words[i] = v.words[i] | o.words[i]
	}
	return n
}

// ExtractZeroExtended returns a vector of size bits starting at bit index.
// Bits outside of the source vector are zero. The index can be negative.
func (v Vector) ExtractZeroExtended(index int, size int) Vector {
	return v.extract(index, size, false)
}

// ExtractWrapped returns a vector of size bits starting at bit index. The
// source vector is treated as though it repeats infinitely in both
// directions. The index can be negative.
func (v Vector) ExtractWrapped(index int, size int) Vector {
	return v.extract(index, size, true)
}

// Shift moves bits toward higher indices for a positive distance and toward
// lower indices for a negative distance. Vacated bits are zero.
func (v Vector) Shift(distance int) Vector {
	return v.ExtractZeroExtended(-distance, v.Size())
}

func (v Vector) extract(index int, size int, wrapped bool) Vector {
	checkSize(size)

	n := Vector{words: make([]uint32, size/WordSize)}
	start := floorDiv(index, WordSize)
	shift := floorMod(index, WordSize)

	for i := range n.words {
		if shift == 0 {
			n.words[i] = v.word(start+i, wrapped)
		} else {
			lo := v.word(start+i, wrapped) >> shift
			hi := v.word(start+i+1, wrapped) << (WordSize - shift)
			n.words[i] = lo | hi
		}
	}

	return n
}

// word returns the word at index i of the infinite extension of the vector.
func (v Vector) word(i int, wrapped bool) uint32 {
	if wrapped {
		return v.words[floorMod(i, len(v.words))]
	}
	if i < 0 || i >= len(v.words) {
		return 0
	}
	return v.words[i]
}

// String returns the bits of the vector, most significant (highest index)
// first.
func (v Vector) String() string {
	s := strings.Builder{}
	for i := v.Size() - 1; i >= 0; i-- {
		if v.words[i/WordSize]&(1<<(i%WordSize)) != 0 {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// VectorBuilder is used to construct a Vector one byte at a time. A builder
// can only be used to build a single vector.
type VectorBuilder struct {
	words []uint32
	built bool
}

// NewVectorBuilder creates a builder for a vector of size bits, with every bit
// clear.
func NewVectorBuilder(size int) *VectorBuilder {
	checkSize(size)
	return &VectorBuilder{words: make([]uint32, size/WordSize)}
}

// SetByte sets the eight bits starting at bit index*8. Returns the builder so
// that calls can be chained.
func (b *VectorBuilder) SetByte(index int, value uint8) *VectorBuilder {
	if b.built {
		panic("bits: vector builder has already been used")
	}
	if index < 0 || index >= len(b.words)*4 {
		panic(fmt.Sprintf("bits: byte index (%d) out of range for vector builder", index))
	}

	w := index / 4
	s := (index % 4) * 8
	b.words[w] = (b.words[w] &^ (0xff << s)) | uint32(value)<<s

	return b
}

// Build returns the finished Vector. The builder cannot be used afterwards.
func (b *VectorBuilder) Build() Vector {
	if b.built {
		panic("bits: vector builder has already been used")
	}
	b.built = true
	return Vector{words: b.words}
}
