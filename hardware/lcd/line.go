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

package lcd

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/bits"
)

// the palette that maps every colour to itself
const identityPalette = 0b11_10_01_00

// Line is a single row of pixels. Each pixel has a two bit colour, stored as
// two bit planes, and an opacity. The pixel at index zero is the leftmost
// pixel on the screen. A Line is immutable.
type Line struct {
	msb     bits.Vector
	lsb     bits.Vector
	opacity bits.Vector
}

// NewLine creates a line from the three bit planes. It panics if the planes
// are not all the same size.
func NewLine(msb, lsb, opacity bits.Vector) Line {
	if msb.Size() != lsb.Size() || lsb.Size() != opacity.Size() {
		panic(fmt.Sprintf("lcd: line planes must be the same size (%d, %d, %d)", msb.Size(), lsb.Size(), opacity.Size()))
	}
	return Line{msb: msb, lsb: lsb, opacity: opacity}
}

// BlankLine returns a line of size pixels in which every pixel is transparent
// colour zero.
func BlankLine(size int) Line {
	v := bits.NewVector(size, false)
	return Line{msb: v, lsb: v, opacity: v}
}

// Size returns the number of pixels in the line.
func (l Line) Size() int {
	return l.msb.Size()
}

// MSB returns the bit plane containing the high bit of each pixel's colour.
func (l Line) MSB() bits.Vector {
	return l.msb
}

// LSB returns the bit plane containing the low bit of each pixel's colour.
func (l Line) LSB() bits.Vector {
	return l.lsb
}

// Opacity returns the bit plane of opaque pixels.
func (l Line) Opacity() bits.Vector {
	return l.opacity
}

// Colour returns the two bit colour of the pixel at index x.
func (l Line) Colour(x int) int {
	var c int
	if l.msb.TestBit(x) {
		c |= 0b10
	}
	if l.lsb.TestBit(x) {
		c |= 0b01
	}
	return c
}

// Equal returns true if all three bit planes of the lines are equal.
func (l Line) Equal(o Line) bool {
	return l.msb.Equal(o.msb) && l.lsb.Equal(o.lsb) && l.opacity.Equal(o.opacity)
}

// String returns the colour of each pixel as a digit, with transparent pixels
// shown as a full stop.
func (l Line) String() string {
	s := strings.Builder{}
	for x := 0; x < l.Size(); x++ {
		if l.opacity.TestBit(x) {
			s.WriteByte(byte('0' + l.Colour(x)))
		} else {
			s.WriteByte('.')
		}
	}
	return s.String()
}

// Shift the line by distance pixels. A positive distance moves pixels towards
// the right of the screen. Pixels shifted in are transparent colour zero.
func (l Line) Shift(distance int) Line {
	return Line{
		msb:     l.msb.Shift(distance),
		lsb:     l.lsb.Shift(distance),
		opacity: l.opacity.Shift(distance),
	}
}

// ExtractWrapped returns size pixels starting at index. Pixels outside the
// line are taken from the opposite end of the line.
func (l Line) ExtractWrapped(index int, size int) Line {
	return Line{
		msb:     l.msb.ExtractWrapped(index, size),
		lsb:     l.lsb.ExtractWrapped(index, size),
		opacity: l.opacity.ExtractWrapped(index, size),
	}
}

// ExtractZeroExtended returns size pixels starting at index. Pixels outside
// the line are transparent colour zero.
func (l Line) ExtractZeroExtended(index int, size int) Line {
	return Line{
		msb:     l.msb.ExtractZeroExtended(index, size),
		lsb:     l.lsb.ExtractZeroExtended(index, size),
		opacity: l.opacity.ExtractZeroExtended(index, size),
	}
}

// MapColors changes the colour of every pixel according to the palette. The
// new colour of a pixel with colour i is taken from bits 2i and 2i+1 of the
// palette. Opacity is unchanged.
func (l Line) MapColors(palette uint8) Line {
	if palette == identityPalette {
		return l
	}

	msb := bits.NewVector(l.Size(), false)
	lsb := bits.NewVector(l.Size(), false)

	for i := 0; i < 4; i++ {
		toLSB := palette&(1<<(2*i)) != 0
		toMSB := palette&(1<<(2*i+1)) != 0
		if !toLSB && !toMSB {
			continue
		}

		// the pixels that currently have colour i
		maskLSB := l.lsb
		if i&0b01 == 0 {
			maskLSB = maskLSB.Not()
		}
		maskMSB := l.msb
		if i&0b10 == 0 {
			maskMSB = maskMSB.Not()
		}
		mask := maskLSB.And(maskMSB)

		if toLSB {
			lsb = lsb.Or(mask)
		}
		if toMSB {
			msb = msb.Or(mask)
		}
	}

	return Line{msb: msb, lsb: lsb, opacity: l.opacity}
}

// Below places the line below the top line. Opaque pixels of the top line hide
// the pixels of this line.
func (l Line) Below(top Line) Line {
	return l.BelowWithOpacity(top, top.opacity)
}

// BelowWithOpacity places the line below the top line, using the opacity
// vector in place of the opacity of the top line.
func (l Line) BelowWithOpacity(top Line, opacity bits.Vector) Line {
	if l.Size() != top.Size() || l.Size() != opacity.Size() {
		panic(fmt.Sprintf("lcd: cannot compose lines of different sizes (%d, %d, %d)", l.Size(), top.Size(), opacity.Size()))
	}

	transparent := opacity.Not()
	return Line{
		msb:     top.msb.And(opacity).Or(l.msb.And(transparent)),
		lsb:     top.lsb.And(opacity).Or(l.lsb.And(transparent)),
		opacity: opacity.Or(l.opacity),
	}
}

// Join returns a line made of the pixels of this line before index and the
// pixels of the other line from index onwards.
func (l Line) Join(other Line, index int) Line {
	if l.Size() != other.Size() {
		panic(fmt.Sprintf("lcd: cannot join lines of different sizes (%d, %d)", l.Size(), other.Size()))
	}
	if index < 0 {
		panic(fmt.Sprintf("lcd: cannot join lines at a negative index (%d)", index))
	}

	ones := bits.NewVector(l.Size(), true)
	left := ones.Shift(index - l.Size())
	right := ones.Shift(index)

	return Line{
		msb:     l.msb.And(left).Or(other.msb.And(right)),
		lsb:     l.lsb.And(left).Or(other.lsb.And(right)),
		opacity: l.opacity.And(left).Or(other.opacity.And(right)),
	}
}

// LineBuilder creates a Line from bytes of tile data. The opacity of a pixel
// is set if either colour bit of the pixel is set.
type LineBuilder struct {
	msb *bits.VectorBuilder
	lsb *bits.VectorBuilder
}

// NewLineBuilder creates a builder for a line of size pixels.
func NewLineBuilder(size int) *LineBuilder {
	return &LineBuilder{
		msb: bits.NewVectorBuilder(size),
		lsb: bits.NewVectorBuilder(size),
	}
}

// SetBytes sets the eight pixels starting at pixel index*8. The lowest bit of
// each byte is the leftmost pixel.
func (b *LineBuilder) SetBytes(index int, msb uint8, lsb uint8) *LineBuilder {
	b.msb.SetByte(index, msb)
	b.lsb.SetByte(index, lsb)
	return b
}

// Build returns the finished line. The builder cannot be used afterwards.
func (b *LineBuilder) Build() Line {
	msb := b.msb.Build()
	lsb := b.lsb.Build()
	return Line{msb: msb, lsb: lsb, opacity: msb.Or(lsb)}
}
