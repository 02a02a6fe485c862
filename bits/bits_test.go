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

package bits_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/bits"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestTestAndSet(t *testing.T) {
	var v uint8 = 0b1010_0001
	test.ExpectSuccess(t, bits.Test(v, 0))
	test.ExpectFailure(t, bits.Test(v, 1))
	test.ExpectSuccess(t, bits.Test(v, 7))

	v = bits.Set(v, 1, true)
	test.ExpectEquality(t, v, 0b1010_0011)
	v = bits.Set(v, 7, false)
	test.ExpectEquality(t, v, 0b0010_0011)

	test.ExpectPanic(t, func() { bits.Test(v, 8) })
	test.ExpectPanic(t, func() { bits.Set(uint16(0), 16, true) })
	test.ExpectPanic(t, func() { bits.Mask(-1) })
}

func TestExtractAndClip(t *testing.T) {
	test.ExpectEquality(t, bits.Clip(4, 0xabcd), 0xd)
	test.ExpectEquality(t, bits.Clip(32, 0xdeadbeef), 0xdeadbeef)
	test.ExpectEquality(t, bits.Extract(0xabcd, 4, 8), 0xbc)
	test.ExpectPanic(t, func() { bits.Extract(0, 30, 4) })
}

func TestRotate(t *testing.T) {
	test.ExpectEquality(t, bits.Rotate(8, 0x81, 1), 0x03)
	test.ExpectEquality(t, bits.Rotate(8, 0x81, -1), 0xc0)
	test.ExpectEquality(t, bits.Rotate(8, 0x12, 4), 0x21)
	test.ExpectEquality(t, bits.Rotate(8, 0x12, 8), 0x12)
	test.ExpectPanic(t, func() { bits.Rotate(8, 0x100, 1) })
}

func TestBytes(t *testing.T) {
	test.ExpectEquality(t, bits.SignExtend8(0xff), -1)
	test.ExpectEquality(t, bits.SignExtend8(0x7f), 127)
	test.ExpectEquality(t, bits.Reverse8(0b0000_0001), 0b1000_0000)
	test.ExpectEquality(t, bits.Reverse8(0b1100_1010), 0b0101_0011)
	test.ExpectEquality(t, bits.Complement8(0x0f), 0xf0)
	test.ExpectEquality(t, bits.Make16(0x12, 0x34), 0x1234)
	test.ExpectEquality(t, bits.High(0x1234), 0x12)
	test.ExpectEquality(t, bits.Low(0x1234), 0x34)

	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, bits.Reverse8(bits.Reverse8(uint8(i))), uint8(i))
	}
}
