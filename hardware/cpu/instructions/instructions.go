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

package instructions

import (
	"fmt"
	"strings"
)

// Prefix is the opcode that selects the prefixed table.
const Prefix = 0xcb

// Definition describes a single opcode.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string
	Family   Family

	// total length of the instruction in bytes, including the prefix byte
	// and operands
	Bytes int

	// number of machine cycles the instruction takes
	Cycles int

	// cycles added to Cycles when the condition of a conditional instruction
	// is met
	AdditionalCycles int
}

func (defn Definition) String() string {
	if defn.Prefixed {
		return fmt.Sprintf("cb %02x %s", defn.OpCode, defn.Mnemonic)
	}
	return fmt.Sprintf("%02x %s", defn.OpCode, defn.Mnemonic)
}

// IsConditional returns true if the instruction has a cost that depends on a
// condition.
func (defn Definition) IsConditional() bool {
	return defn.AdditionalCycles > 0
}

var direct [256]*Definition
var prefixed [256]*Definition

// Direct returns the definition for the opcode from the direct table. Returns
// nil if the opcode is not used.
func Direct(opcode uint8) *Definition {
	return direct[opcode]
}

// Prefixed returns the definition for the opcode from the prefixed table.
func Prefixed(opcode uint8) *Definition {
	return prefixed[opcode]
}

// names of operands, indexed by the register fields of the opcode
var r8 = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var r16 = [...]string{"BC", "DE", "HL", "SP"}
var r16stack = [...]string{"BC", "DE", "HL", "AF"}
var cc = [...]string{"NZ", "Z", "NC", "C"}

// the 3 bit register field for (HL)
const hlr = 6

func add(tab *[256]*Definition, prefix bool, op int, mnemonic string, f Family, bytes int, cycles int, additional int) {
	if tab[op] != nil {
		panic(fmt.Sprintf("instructions: duplicate definition for opcode %#02x (%s and %s)", op, tab[op].Mnemonic, mnemonic))
	}
	tab[op] = &Definition{
		OpCode:           uint8(op),
		Prefixed:         prefix,
		Mnemonic:         mnemonic,
		Family:           f,
		Bytes:            bytes,
		Cycles:           cycles,
		AdditionalCycles: additional,
	}
}

func init() {
	buildDirect()
	buildPrefixed()
}

func buildDirect() {
	d := func(op int, mnemonic string, f Family, bytes int, cycles int) {
		add(&direct, false, op, mnemonic, f, bytes, cycles, 0)
	}
	dc := func(op int, mnemonic string, f Family, bytes int, cycles int, additional int) {
		add(&direct, false, op, mnemonic, f, bytes, cycles, additional)
	}

	d(0x00, "NOP", NOP, 1, 1)
	d(0x10, "STOP", STOP, 2, 1)
	d(0x76, "HALT", HALT, 1, 1)

	// 16bit loads, increments and additions
	for i := 0; i < 4; i++ {
		d(0x01|i<<4, fmt.Sprintf("LD %s,n16", r16[i]), LD_R16SP_N16, 3, 3)
		d(0x03|i<<4, fmt.Sprintf("INC %s", r16[i]), INC_R16SP, 1, 2)
		d(0x09|i<<4, fmt.Sprintf("ADD HL,%s", r16[i]), ADD_HL_R16SP, 1, 2)
		d(0x0b|i<<4, fmt.Sprintf("DEC %s", r16[i]), DEC_R16SP, 1, 2)
		d(0xc1|i<<4, fmt.Sprintf("POP %s", r16stack[i]), POP_R16, 1, 3)
		d(0xc5|i<<4, fmt.Sprintf("PUSH %s", r16stack[i]), PUSH_R16, 1, 4)
	}

	// indirect loads through register pairs
	d(0x02, "LD (BC),A", LD_BCR_A, 1, 2)
	d(0x12, "LD (DE),A", LD_DER_A, 1, 2)
	d(0x22, "LD (HL+),A", LD_HLRU_A, 1, 2)
	d(0x32, "LD (HL-),A", LD_HLRU_A, 1, 2)
	d(0x0a, "LD A,(BC)", LD_A_BCR, 1, 2)
	d(0x1a, "LD A,(DE)", LD_A_DER, 1, 2)
	d(0x2a, "LD A,(HL+)", LD_A_HLRU, 1, 2)
	d(0x3a, "LD A,(HL-)", LD_A_HLRU, 1, 2)

	// 8bit increments, decrements and immediate loads
	for i := 0; i < 8; i++ {
		if i == hlr {
			d(0x34, "INC (HL)", INC_HLR, 1, 3)
			d(0x35, "DEC (HL)", DEC_HLR, 1, 3)
			d(0x36, "LD (HL),n8", LD_HLR_N8, 2, 3)
			continue
		}
		d(0x04|i<<3, fmt.Sprintf("INC %s", r8[i]), INC_R8, 1, 1)
		d(0x05|i<<3, fmt.Sprintf("DEC %s", r8[i]), DEC_R8, 1, 1)
		d(0x06|i<<3, fmt.Sprintf("LD %s,n8", r8[i]), LD_R8_N8, 2, 2)
	}

	// accumulator rotations and miscellaneous
	d(0x07, "RLCA", ROTCA, 1, 1)
	d(0x0f, "RRCA", ROTCA, 1, 1)
	d(0x17, "RLA", ROTA, 1, 1)
	d(0x1f, "RRA", ROTA, 1, 1)
	d(0x27, "DAA", DAA, 1, 1)
	d(0x2f, "CPL", CPL, 1, 1)
	d(0x37, "SCF", SCCF, 1, 1)
	d(0x3f, "CCF", SCCF, 1, 1)

	d(0x08, "LD (n16),SP", LD_N16R_SP, 3, 5)

	// relative jumps
	d(0x18, "JR e8", JR_E8, 2, 3)
	for i := 0; i < 4; i++ {
		dc(0x20|i<<3, fmt.Sprintf("JR %s,e8", cc[i]), JR_CC_E8, 2, 2, 1)
	}

	// register to register loads. 0x76 would be LD (HL),(HL) but is HALT
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := 0x40 | dst<<3 | src
			switch {
			case dst == hlr && src == hlr:
				continue
			case src == hlr:
				d(op, fmt.Sprintf("LD %s,(HL)", r8[dst]), LD_R8_HLR, 1, 2)
			case dst == hlr:
				d(op, fmt.Sprintf("LD (HL),%s", r8[src]), LD_HLR_R8, 1, 2)
			default:
				d(op, fmt.Sprintf("LD %s,%s", r8[dst], r8[src]), LD_R8_R8, 1, 1)
			}
		}
	}

	// accumulator arithmetic and logic. the register, (HL) and immediate
	// forms of each operation
	type arith struct {
		mnemonic string
		r8       Family
		hlr      Family
		n8       Family
	}
	ops := [...]arith{
		{"ADD", ADD_A_R8, ADD_A_HLR, ADD_A_N8},
		{"ADC", ADD_A_R8, ADD_A_HLR, ADD_A_N8},
		{"SUB", SUB_A_R8, SUB_A_HLR, SUB_A_N8},
		{"SBC", SUB_A_R8, SUB_A_HLR, SUB_A_N8},
		{"AND", AND_A_R8, AND_A_HLR, AND_A_N8},
		{"XOR", XOR_A_R8, XOR_A_HLR, XOR_A_N8},
		{"OR", OR_A_R8, OR_A_HLR, OR_A_N8},
		{"CP", CP_A_R8, CP_A_HLR, CP_A_N8},
	}
	for i, o := range ops {
		for src := 0; src < 8; src++ {
			op := 0x80 | i<<3 | src
			if src == hlr {
				d(op, fmt.Sprintf("%s A,(HL)", o.mnemonic), o.hlr, 1, 2)
			} else {
				d(op, fmt.Sprintf("%s A,%s", o.mnemonic, r8[src]), o.r8, 1, 1)
			}
		}
		d(0xc6|i<<3, fmt.Sprintf("%s A,n8", o.mnemonic), o.n8, 2, 2)
	}

	// conditional control flow
	for i := 0; i < 4; i++ {
		dc(0xc0|i<<3, fmt.Sprintf("RET %s", cc[i]), RET_CC, 1, 2, 3)
		dc(0xc2|i<<3, fmt.Sprintf("JP %s,n16", cc[i]), JP_CC_N16, 3, 3, 1)
		dc(0xc4|i<<3, fmt.Sprintf("CALL %s,n16", cc[i]), CALL_CC_N16, 3, 3, 3)
	}

	// restarts
	for i := 0; i < 8; i++ {
		d(0xc7|i<<3, fmt.Sprintf("RST %02xh", i<<3), RST_U3, 1, 4)
	}

	d(0xc3, "JP n16", JP_N16, 3, 4)
	d(0xc9, "RET", RET, 1, 4)
	d(0xcd, "CALL n16", CALL_N16, 3, 6)
	d(0xd9, "RETI", RETI, 1, 4)
	d(0xe9, "JP HL", JP_HL, 1, 1)

	// high page and absolute loads
	d(0xe0, "LDH (n8),A", LD_N8R_A, 2, 3)
	d(0xf0, "LDH A,(n8)", LD_A_N8R, 2, 3)
	d(0xe2, "LD (C),A", LD_CR_A, 1, 2)
	d(0xf2, "LD A,(C)", LD_A_CR, 1, 2)
	d(0xea, "LD (n16),A", LD_N16R_A, 3, 4)
	d(0xfa, "LD A,(n16)", LD_A_N16R, 3, 4)

	// stack pointer arithmetic
	d(0xe8, "ADD SP,e8", LD_HLSP_S8, 2, 4)
	d(0xf8, "LD HL,SP+e8", LD_HLSP_S8, 2, 3)
	d(0xf9, "LD SP,HL", LD_SP_HL, 1, 2)

	d(0xf3, "DI", EDI, 1, 1)
	d(0xfb, "EI", EDI, 1, 1)
}

func buildPrefixed() {
	p := func(op int, mnemonic string, f Family, cycles int) {
		add(&prefixed, true, op, mnemonic, f, 2, cycles, 0)
	}

	type shift struct {
		mnemonic string
		r8       Family
		hlr      Family
	}
	shifts := [...]shift{
		{"RLC", ROTC_R8, ROTC_HLR},
		{"RRC", ROTC_R8, ROTC_HLR},
		{"RL", ROT_R8, ROT_HLR},
		{"RR", ROT_R8, ROT_HLR},
		{"SLA", SLA_R8, SLA_HLR},
		{"SRA", SRA_R8, SRA_HLR},
		{"SWAP", SWAP_R8, SWAP_HLR},
		{"SRL", SRL_R8, SRL_HLR},
	}
	for i, s := range shifts {
		for r := 0; r < 8; r++ {
			op := i<<3 | r
			if r == hlr {
				p(op, fmt.Sprintf("%s (HL)", s.mnemonic), s.hlr, 4)
			} else {
				p(op, fmt.Sprintf("%s %s", s.mnemonic, r8[r]), s.r8, 2)
			}
		}
	}

	for b := 0; b < 8; b++ {
		for r := 0; r < 8; r++ {
			bit := 0x40 | b<<3 | r
			res := 0x80 | b<<3 | r
			set := 0xc0 | b<<3 | r
			if r == hlr {
				p(bit, fmt.Sprintf("BIT %d,(HL)", b), BIT_U3_HLR, 3)
				p(res, fmt.Sprintf("RES %d,(HL)", b), CHG_U3_HLR, 4)
				p(set, fmt.Sprintf("SET %d,(HL)", b), CHG_U3_HLR, 4)
			} else {
				p(bit, fmt.Sprintf("BIT %d,%s", b, r8[r]), BIT_U3_R8, 2)
				p(res, fmt.Sprintf("RES %d,%s", b, r8[r]), CHG_U3_R8, 2)
				p(set, fmt.Sprintf("SET %d,%s", b, r8[r]), CHG_U3_R8, 2)
			}
		}
	}
}

// Dump writes a summary of both opcode tables to the builder. Useful for
// debugging the tables.
func Dump(s *strings.Builder) {
	for _, tab := range []*[256]*Definition{&direct, &prefixed} {
		for _, defn := range tab {
			if defn == nil {
				continue
			}
			s.WriteString(fmt.Sprintf("%-24s %s bytes=%d cycles=%d", defn.String(), defn.Family, defn.Bytes, defn.Cycles))
			if defn.IsConditional() {
				s.WriteString(fmt.Sprintf("+%d", defn.AdditionalCycles))
			}
			s.WriteString("\n")
		}
	}
}
