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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestTableCompleteness(t *testing.T) {
	unused := map[uint8]bool{
		0xcb: true, // the prefix is not itself an instruction
		0xd3: true, 0xdb: true, 0xdd: true,
		0xe3: true, 0xe4: true, 0xeb: true, 0xec: true, 0xed: true,
		0xf4: true, 0xfc: true, 0xfd: true,
	}

	for i := 0; i < 256; i++ {
		op := uint8(i)
		defn := instructions.Direct(op)
		if unused[op] {
			test.ExpectEquality(t, defn == nil, true, op)
		} else if test.ExpectEquality(t, defn != nil, true, op) {
			test.ExpectEquality(t, defn.OpCode, op)
			test.ExpectEquality(t, defn.Prefixed, false)
		}

		p := instructions.Prefixed(op)
		if test.ExpectEquality(t, p != nil, true, op) {
			test.ExpectEquality(t, p.OpCode, op)
			test.ExpectEquality(t, p.Bytes, 2)
			test.ExpectEquality(t, p.Prefixed, true)
		}
	}
}

func TestSelectedDefinitions(t *testing.T) {
	defn := instructions.Direct(0x76)
	test.ExpectEquality(t, defn.Family, instructions.HALT)

	defn = instructions.Direct(0x20)
	test.ExpectEquality(t, defn.Mnemonic, "JR NZ,e8")
	test.ExpectEquality(t, defn.Cycles, 2)
	test.ExpectEquality(t, defn.AdditionalCycles, 1)
	test.ExpectSuccess(t, defn.IsConditional())

	defn = instructions.Direct(0xcd)
	test.ExpectEquality(t, defn.Bytes, 3)
	test.ExpectEquality(t, defn.Cycles, 6)

	defn = instructions.Direct(0xf1)
	test.ExpectEquality(t, defn.Mnemonic, "POP AF")

	defn = instructions.Direct(0x8e)
	test.ExpectEquality(t, defn.Mnemonic, "ADC A,(HL)")
	test.ExpectEquality(t, defn.Family, instructions.ADD_A_HLR)

	defn = instructions.Prefixed(0x7e)
	test.ExpectEquality(t, defn.Mnemonic, "BIT 7,(HL)")
	test.ExpectEquality(t, defn.Cycles, 3)

	defn = instructions.Prefixed(0x37)
	test.ExpectEquality(t, defn.Mnemonic, "SWAP A")
	test.ExpectEquality(t, defn.String(), "cb 37 SWAP A")
}

func TestDump(t *testing.T) {
	s := &strings.Builder{}
	instructions.Dump(s)
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 244+256)
}
