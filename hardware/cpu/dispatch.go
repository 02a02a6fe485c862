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
	"github.com/jetsetilly/gopherdmg/bits"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/alu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/logger"
)

// affected flag groups
const (
	allFlags = alu.Z | alu.N | alu.H | alu.C
	flagsZNH = alu.Z | alu.N | alu.H
	flagsNHC = alu.N | alu.H | alu.C
)

// dispatch executes the instruction. Operands are decoded from the opcode and
// the bytes that follow it.
func (cpu *CPU) dispatch(defn *instructions.Definition) error {
	op := defn.OpCode
	nextPC := int(cpu.PC) + defn.Bytes

	// set to true if the condition of a conditional instruction is met
	var taken bool

	switch defn.Family {
	case instructions.NOP:

	// loads
	case instructions.LD_R8_HLR:
		cpu.Regs.Set(extractReg(op, 3), cpu.read8AtHL())

	case instructions.LD_A_HLRU:
		hl := cpu.Regs.GetPair(registers.HL)
		cpu.Regs.Set(registers.A, cpu.read8(hl))
		cpu.Regs.SetPair(registers.HL, hl+extractHLIncrement(op))

	case instructions.LD_A_N8R:
		cpu.Regs.Set(registers.A, cpu.read8(addresses.RegsStart+uint16(cpu.read8AfterOpcode())))

	case instructions.LD_A_CR:
		cpu.Regs.Set(registers.A, cpu.read8(addresses.RegsStart+uint16(cpu.Regs.Get(registers.C))))

	case instructions.LD_A_N16R:
		cpu.Regs.Set(registers.A, cpu.read8(cpu.read16AfterOpcode()))

	case instructions.LD_A_BCR:
		cpu.Regs.Set(registers.A, cpu.read8(cpu.Regs.GetPair(registers.BC)))

	case instructions.LD_A_DER:
		cpu.Regs.Set(registers.A, cpu.read8(cpu.Regs.GetPair(registers.DE)))

	case instructions.LD_R8_N8:
		cpu.Regs.Set(extractReg(op, 3), cpu.read8AfterOpcode())

	case instructions.LD_R16SP_N16:
		cpu.setReg16SP(op, cpu.read16AfterOpcode())

	case instructions.POP_R16:
		cpu.setReg16(op, cpu.pop16())

	// stores
	case instructions.LD_HLR_R8:
		cpu.write8AtHL(cpu.Regs.Get(extractReg(op, 0)))

	case instructions.LD_HLRU_A:
		hl := cpu.Regs.GetPair(registers.HL)
		cpu.write8(hl, cpu.Regs.Get(registers.A))
		cpu.Regs.SetPair(registers.HL, hl+extractHLIncrement(op))

	case instructions.LD_N8R_A:
		cpu.write8(addresses.RegsStart+uint16(cpu.read8AfterOpcode()), cpu.Regs.Get(registers.A))

	case instructions.LD_CR_A:
		cpu.write8(addresses.RegsStart+uint16(cpu.Regs.Get(registers.C)), cpu.Regs.Get(registers.A))

	case instructions.LD_N16R_A:
		cpu.write8(cpu.read16AfterOpcode(), cpu.Regs.Get(registers.A))

	case instructions.LD_BCR_A:
		cpu.write8(cpu.Regs.GetPair(registers.BC), cpu.Regs.Get(registers.A))

	case instructions.LD_DER_A:
		cpu.write8(cpu.Regs.GetPair(registers.DE), cpu.Regs.Get(registers.A))

	case instructions.LD_HLR_N8:
		cpu.write8AtHL(cpu.read8AfterOpcode())

	case instructions.LD_N16R_SP:
		cpu.write16(cpu.read16AfterOpcode(), cpu.SP)

	// moves
	case instructions.LD_R8_R8:
		cpu.Regs.Set(extractReg(op, 3), cpu.Regs.Get(extractReg(op, 0)))

	case instructions.LD_SP_HL:
		cpu.SP = cpu.Regs.GetPair(registers.HL)

	case instructions.PUSH_R16:
		cpu.push16(cpu.reg16(op))

	// addition
	case instructions.ADD_A_R8:
		cpu.setReg(registers.A, alu.Add(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0)), cpu.useCarry(op)))

	case instructions.ADD_A_N8:
		cpu.setReg(registers.A, alu.Add(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode(), cpu.useCarry(op)))

	case instructions.ADD_A_HLR:
		cpu.setReg(registers.A, alu.Add(cpu.Regs.Get(registers.A), cpu.read8AtHL(), cpu.useCarry(op)))

	case instructions.INC_R8:
		r := extractReg(op, 3)
		res := alu.Add(cpu.Regs.Get(r), 1, false)
		cpu.Regs.Set(r, uint8(res.Value()))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.INC_HLR:
		res := alu.Add(cpu.read8AtHL(), 1, false)
		cpu.write8AtHL(uint8(res.Value()))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.INC_R16SP:
		cpu.setReg16SP(op, cpu.reg16SP(op)+1)

	case instructions.ADD_HL_R16SP:
		res := alu.Add16H(cpu.Regs.GetPair(registers.HL), cpu.reg16SP(op))
		cpu.Regs.SetPair(registers.HL, res.Value())
		cpu.setFlags(res.Flags(), flagsNHC)

	case instructions.LD_HLSP_S8:
		e := uint16(bits.SignExtend8(cpu.read8AfterOpcode()))
		res := alu.Add16L(cpu.SP, e)
		if op&0x10 != 0 {
			cpu.Regs.SetPair(registers.HL, res.Value())
		} else {
			cpu.SP = res.Value()
		}
		cpu.setFlags(res.Flags(), allFlags)

	// subtraction and comparison
	case instructions.SUB_A_R8:
		cpu.setReg(registers.A, alu.Sub(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0)), cpu.useCarry(op)))

	case instructions.SUB_A_N8:
		cpu.setReg(registers.A, alu.Sub(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode(), cpu.useCarry(op)))

	case instructions.SUB_A_HLR:
		cpu.setReg(registers.A, alu.Sub(cpu.Regs.Get(registers.A), cpu.read8AtHL(), cpu.useCarry(op)))

	case instructions.DEC_R8:
		r := extractReg(op, 3)
		res := alu.Sub(cpu.Regs.Get(r), 1, false)
		cpu.Regs.Set(r, uint8(res.Value()))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.DEC_HLR:
		res := alu.Sub(cpu.read8AtHL(), 1, false)
		cpu.write8AtHL(uint8(res.Value()))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.CP_A_R8:
		cpu.setFlags(alu.Sub(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0)), false).Flags(), allFlags)

	case instructions.CP_A_N8:
		cpu.setFlags(alu.Sub(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode(), false).Flags(), allFlags)

	case instructions.CP_A_HLR:
		cpu.setFlags(alu.Sub(cpu.Regs.Get(registers.A), cpu.read8AtHL(), false).Flags(), allFlags)

	case instructions.DEC_R16SP:
		cpu.setReg16SP(op, cpu.reg16SP(op)-1)

	// logic
	case instructions.AND_A_N8:
		cpu.setReg(registers.A, alu.And(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode()))

	case instructions.AND_A_R8:
		cpu.setReg(registers.A, alu.And(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0))))

	case instructions.AND_A_HLR:
		cpu.setReg(registers.A, alu.And(cpu.Regs.Get(registers.A), cpu.read8AtHL()))

	case instructions.OR_A_R8:
		cpu.setReg(registers.A, alu.Or(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0))))

	case instructions.OR_A_N8:
		cpu.setReg(registers.A, alu.Or(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode()))

	case instructions.OR_A_HLR:
		cpu.setReg(registers.A, alu.Or(cpu.Regs.Get(registers.A), cpu.read8AtHL()))

	case instructions.XOR_A_R8:
		cpu.setReg(registers.A, alu.Xor(cpu.Regs.Get(registers.A), cpu.Regs.Get(extractReg(op, 0))))

	case instructions.XOR_A_N8:
		cpu.setReg(registers.A, alu.Xor(cpu.Regs.Get(registers.A), cpu.read8AfterOpcode()))

	case instructions.XOR_A_HLR:
		cpu.setReg(registers.A, alu.Xor(cpu.Regs.Get(registers.A), cpu.read8AtHL()))

	case instructions.CPL:
		cpu.Regs.Set(registers.A, bits.Complement8(cpu.Regs.Get(registers.A)))
		cpu.setFlags(uint8(alu.N|alu.H), alu.N|alu.H)

	// rotations and shifts
	case instructions.ROTCA:
		res := alu.Rotate(extractDirection(op), cpu.Regs.Get(registers.A))
		cpu.Regs.Set(registers.A, uint8(res.Value()))
		cpu.setFlags(res.Flags()&uint8(alu.C), allFlags)

	case instructions.ROTA:
		res := alu.RotateCarry(extractDirection(op), cpu.Regs.Get(registers.A), cpu.flag(alu.C))
		cpu.Regs.Set(registers.A, uint8(res.Value()))
		cpu.setFlags(res.Flags()&uint8(alu.C), allFlags)

	case instructions.ROTC_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.Rotate(extractDirection(op), cpu.Regs.Get(r)))

	case instructions.ROT_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.RotateCarry(extractDirection(op), cpu.Regs.Get(r), cpu.flag(alu.C)))

	case instructions.ROTC_HLR:
		cpu.setHL(alu.Rotate(extractDirection(op), cpu.read8AtHL()))

	case instructions.ROT_HLR:
		cpu.setHL(alu.RotateCarry(extractDirection(op), cpu.read8AtHL(), cpu.flag(alu.C)))

	case instructions.SWAP_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.Swap(cpu.Regs.Get(r)))

	case instructions.SWAP_HLR:
		cpu.setHL(alu.Swap(cpu.read8AtHL()))

	case instructions.SLA_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.ShiftLeft(cpu.Regs.Get(r)))

	case instructions.SRA_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.ShiftRightA(cpu.Regs.Get(r)))

	case instructions.SRL_R8:
		r := extractReg(op, 0)
		cpu.setReg(r, alu.ShiftRightL(cpu.Regs.Get(r)))

	case instructions.SLA_HLR:
		cpu.setHL(alu.ShiftLeft(cpu.read8AtHL()))

	case instructions.SRA_HLR:
		cpu.setHL(alu.ShiftRightA(cpu.read8AtHL()))

	case instructions.SRL_HLR:
		cpu.setHL(alu.ShiftRightL(cpu.read8AtHL()))

	// bit test and change
	case instructions.BIT_U3_R8:
		res := alu.TestBit(cpu.Regs.Get(extractReg(op, 0)), extractBitIndex(op))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.BIT_U3_HLR:
		res := alu.TestBit(cpu.read8AtHL(), extractBitIndex(op))
		cpu.setFlags(res.Flags(), flagsZNH)

	case instructions.CHG_U3_R8:
		r := extractReg(op, 0)
		cpu.Regs.SetBit(r, extractBitIndex(op), extractSet(op))

	case instructions.CHG_U3_HLR:
		v := cpu.read8AtHL()
		m := uint8(1) << extractBitIndex(op)
		if extractSet(op) {
			v |= m
		} else {
			v &^= m
		}
		cpu.write8AtHL(v)

	// miscellaneous arithmetic
	case instructions.DAA:
		cpu.setReg(registers.A, alu.BCDAdjust(cpu.Regs.Get(registers.A), cpu.flag(alu.N), cpu.flag(alu.H), cpu.flag(alu.C)))

	case instructions.SCCF:
		c := !cpu.useCarry(op)
		cpu.setFlags(alu.MaskZNHC(false, false, false, c), flagsNHC)

	// jumps
	case instructions.JP_HL:
		nextPC = int(cpu.Regs.GetPair(registers.HL))

	case instructions.JP_N16:
		nextPC = int(cpu.read16AfterOpcode())

	case instructions.JP_CC_N16:
		if cpu.testCondition(op) {
			taken = true
			nextPC = int(cpu.read16AfterOpcode())
		}

	case instructions.JR_E8:
		nextPC += bits.SignExtend8(cpu.read8AfterOpcode())

	case instructions.JR_CC_E8:
		if cpu.testCondition(op) {
			taken = true
			nextPC += bits.SignExtend8(cpu.read8AfterOpcode())
		}

	// calls and returns
	case instructions.CALL_N16:
		target := cpu.read16AfterOpcode()
		cpu.push16(uint16(nextPC))
		nextPC = int(target)

	case instructions.CALL_CC_N16:
		if cpu.testCondition(op) {
			taken = true
			target := cpu.read16AfterOpcode()
			cpu.push16(uint16(nextPC))
			nextPC = int(target)
		}

	case instructions.RST_U3:
		cpu.push16(uint16(nextPC))
		nextPC = int(op>>3&0x07) * 8

	case instructions.RET:
		nextPC = int(cpu.pop16())

	case instructions.RET_CC:
		if cpu.testCondition(op) {
			taken = true
			nextPC = int(cpu.pop16())
		}

	// interrupts
	case instructions.EDI:
		cpu.IME = op&0x08 != 0

	case instructions.RETI:
		cpu.IME = true
		nextPC = int(cpu.pop16())

	// control
	case instructions.HALT:
		cpu.LastResult = Result{Address: cpu.PC, Defn: defn, Cycles: defn.Cycles}
		cpu.nextNonIdle = never
		logger.Logf(logger.Allow, "CPU", "HALT at %#04x", cpu.PC)
		cpu.PC = uint16(nextPC)
		return nil

	case instructions.STOP:
		return curated.Errorf(StopInstruction, cpu.PC)

	default:
		return curated.Errorf(UnimplementedInstruction, defn)
	}

	cycles := defn.Cycles
	if taken {
		cycles += defn.AdditionalCycles
	}

	cpu.LastResult = Result{Address: cpu.PC, Defn: defn, Cycles: cycles}
	cpu.nextNonIdle += uint64(cycles)
	cpu.PC = uint16(nextPC)

	return nil
}
