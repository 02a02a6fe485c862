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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/alu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
)

// registers selected by the three bit register fields of an opcode. the value
// of six selects (HL) and is handled by the HLR instruction families
var r8 = [...]registers.Register{
	registers.B, registers.C, registers.D, registers.E,
	registers.H, registers.L, registers.NumRegisters, registers.A,
}

// register pairs selected by bits 4 and 5 of an opcode. the last pair is
// either AF or SP depending on the instruction
var r16 = [...]registers.Pair{registers.BC, registers.DE, registers.HL, registers.AF}

// extractReg returns the register selected by the three bit field starting at
// bit pos of the opcode.
func extractReg(opcode uint8, pos int) registers.Register {
	r := r8[(opcode>>pos)&0x07]
	if r == registers.NumRegisters {
		panic(fmt.Sprintf("cpu: opcode %#02x does not select a register", opcode))
	}
	return r
}

func extractPair(opcode uint8) registers.Pair {
	return r16[(opcode>>4)&0x03]
}

// reg16 returns the value of the register pair selected by the opcode, with
// AF being the fourth choice.
func (cpu *CPU) reg16(opcode uint8) uint16 {
	return cpu.Regs.GetPair(extractPair(opcode))
}

func (cpu *CPU) setReg16(opcode uint8, v uint16) {
	cpu.Regs.SetPair(extractPair(opcode), v)
}

// reg16SP returns the value of the register pair selected by the opcode, with
// SP being the fourth choice.
func (cpu *CPU) reg16SP(opcode uint8) uint16 {
	p := extractPair(opcode)
	if p == registers.AF {
		return cpu.SP
	}
	return cpu.Regs.GetPair(p)
}

func (cpu *CPU) setReg16SP(opcode uint8, v uint16) {
	p := extractPair(opcode)
	if p == registers.AF {
		cpu.SP = v
		return
	}
	cpu.Regs.SetPair(p, v)
}

// extractHLIncrement returns the change to HL after a LD (HL+) or LD (HL-)
// instruction.
func extractHLIncrement(opcode uint8) uint16 {
	if opcode&0x10 != 0 {
		return 0xffff
	}
	return 0x0001
}

// extractDirection returns the direction of a rotation.
func extractDirection(opcode uint8) alu.Direction {
	if opcode&0x08 != 0 {
		return alu.Right
	}
	return alu.Left
}

// extractBitIndex returns the bit index of the BIT, SET and RES instructions.
func extractBitIndex(opcode uint8) int {
	return int(opcode>>3) & 0x07
}

// extractSet returns true for SET and false for RES.
func extractSet(opcode uint8) bool {
	return opcode&0x40 != 0
}

// useCarry returns true if the instruction includes the carry flag in the
// arithmetic (ADC and SBC) or complements the carry flag (CCF).
func (cpu *CPU) useCarry(opcode uint8) bool {
	return opcode&0x08 != 0 && cpu.flag(alu.C)
}

// testCondition returns the state of the condition encoded in bits 3 and 4 of
// the opcode.
func (cpu *CPU) testCondition(opcode uint8) bool {
	switch (opcode >> 3) & 0x03 {
	case 0:
		return !cpu.flag(alu.Z)
	case 1:
		return cpu.flag(alu.Z)
	case 2:
		return !cpu.flag(alu.C)
	default:
		return cpu.flag(alu.C)
	}
}

func (cpu *CPU) flag(f alu.Flag) bool {
	return cpu.Regs.Get(registers.F)&uint8(f) != 0
}

// setFlags changes the affected flags in the F register to the states in
// flags. Flags not in affected are unchanged.
func (cpu *CPU) setFlags(flags uint8, affected alu.Flag) {
	f := cpu.Regs.Get(registers.F)
	cpu.Regs.Set(registers.F, f&^uint8(affected)|flags&uint8(affected))
}

// setReg sets the register to the value of the result and the F register to
// the flags of the result.
func (cpu *CPU) setReg(r registers.Register, res alu.Result) {
	cpu.Regs.Set(r, uint8(res.Value()))
	cpu.Regs.Set(registers.F, res.Flags())
}

// setHL writes the value of the result to (HL) and the F register to the flags
// of the result.
func (cpu *CPU) setHL(res alu.Result) {
	cpu.write8AtHL(uint8(res.Value()))
	cpu.Regs.Set(registers.F, res.Flags())
}
