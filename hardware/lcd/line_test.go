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

package lcd_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/bits"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/test"
)

// sample returns a 32 pixel line where the first eight pixels have the
// colours 3, 2, 1, 0, 3, 2, 1, 0
func sample() lcd.Line {
	return lcd.NewLineBuilder(32).SetBytes(0, 0b00110011, 0b01010101).Build()
}

// solid returns a 32 pixel line of a single opaque colour
func solid(colour int) lcd.Line {
	ones := bits.NewVector(32, true)
	zeros := bits.NewVector(32, false)
	msb, lsb := zeros, zeros
	if colour&0b10 != 0 {
		msb = ones
	}
	if colour&0b01 != 0 {
		lsb = ones
	}
	return lcd.NewLine(msb, lsb, ones)
}

func TestLineBuilder(t *testing.T) {
	l := sample()
	test.ExpectEquality(t, l.Size(), 32)
	test.ExpectEquality(t, l.String(), "321.321."+strings.Repeat(".", 24))
	test.ExpectEquality(t, l.Colour(0), 3)
	test.ExpectEquality(t, l.Colour(1), 2)
	test.ExpectEquality(t, l.Colour(3), 0)
}

func TestMismatchedPlanes(t *testing.T) {
	test.ExpectPanic(t, func() {
		lcd.NewLine(bits.NewVector(32, false), bits.NewVector(64, false), bits.NewVector(32, false))
	})
}

func TestMapColors(t *testing.T) {
	l := sample()

	// identity palette
	test.ExpectSuccess(t, l.MapColors(0b11100100).Equal(l))

	// reversing palette. opacity is unchanged
	r := l.MapColors(0b00011011)
	test.ExpectEquality(t, r.String(), "012.012."+strings.Repeat(".", 24))
	test.ExpectEquality(t, r.Colour(3), 3)
	test.ExpectEquality(t, r.Colour(31), 3)
	test.ExpectSuccess(t, r.Opacity().Equal(l.Opacity()))

	// everything to colour 2
	r = l.MapColors(0b10101010)
	for x := 0; x < 32; x++ {
		test.ExpectEquality(t, r.Colour(x), 2, x)
	}
}

func TestBelow(t *testing.T) {
	r := solid(1).Below(sample())
	test.ExpectEquality(t, r.String(), "32113211"+strings.Repeat("1", 24))

	// an empty opacity vector leaves the bottom line unchanged
	r = solid(1).BelowWithOpacity(sample(), bits.NewVector(32, false))
	test.ExpectSuccess(t, r.Equal(solid(1)))

	// the opacity vector is used in place of the opacity of the top line
	r = lcd.BlankLine(32).BelowWithOpacity(sample(), bits.NewVector(32, true))
	test.ExpectEquality(t, r.String(), "32103210"+strings.Repeat("0", 24))

	test.ExpectPanic(t, func() {
		solid(1).Below(lcd.BlankLine(64))
	})
}

func TestJoin(t *testing.T) {
	r := solid(1).Join(solid(2), 10)
	test.ExpectEquality(t, r.String(), strings.Repeat("1", 10)+strings.Repeat("2", 22))

	r = solid(1).Join(solid(2), 0)
	test.ExpectSuccess(t, r.Equal(solid(2)))

	r = solid(1).Join(solid(2), 32)
	test.ExpectSuccess(t, r.Equal(solid(1)))

	test.ExpectPanic(t, func() {
		solid(1).Join(solid(2), -1)
	})
	test.ExpectPanic(t, func() {
		solid(1).Join(lcd.BlankLine(64), 1)
	})
}

func TestShift(t *testing.T) {
	l := sample()
	r := l.Shift(4)
	test.ExpectEquality(t, r.String(), "....321.321."+strings.Repeat(".", 20))
	test.ExpectSuccess(t, r.Shift(-4).Equal(l))

	// pixels shifted out are lost
	r = l.Shift(-2)
	test.ExpectEquality(t, r.String(), "1.321."+strings.Repeat(".", 26))
	test.ExpectFailure(t, r.Shift(2).Equal(l))

	test.ExpectSuccess(t, l.Shift(32).Equal(lcd.BlankLine(32)))
	test.ExpectSuccess(t, l.Shift(-32).Equal(lcd.BlankLine(32)))
}

func TestExtract(t *testing.T) {
	l := sample()

	r := l.ExtractWrapped(-8, 32)
	test.ExpectEquality(t, r.String(), "........321.321."+strings.Repeat(".", 16))

	r = l.ExtractWrapped(4, 32)
	test.ExpectEquality(t, r.String(), "321."+strings.Repeat(".", 24)+"321.")

	r = l.ExtractZeroExtended(4, 32)
	test.ExpectEquality(t, r.String(), "321."+strings.Repeat(".", 28))

	r = l.ExtractWrapped(0, 64)
	test.ExpectEquality(t, r.Size(), 64)
	test.ExpectEquality(t, r.String(), "321.321."+strings.Repeat(".", 24)+"321.321."+strings.Repeat(".", 24))
}
