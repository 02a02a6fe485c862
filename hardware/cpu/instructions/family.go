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

// Family groups instructions that share the same execution logic. The
// operands of an instruction are encoded in the bits of the opcode and are
// decoded by the CPU at execution time.
type Family int

// List of instruction families.
const (
	NOP Family = iota
	LD_R8_HLR
	LD_A_HLRU
	LD_A_N8R
	LD_A_CR
	LD_A_N16R
	LD_A_BCR
	LD_A_DER
	LD_R8_N8
	LD_R16SP_N16
	POP_R16
	LD_HLR_R8
	LD_HLRU_A
	LD_N8R_A
	LD_CR_A
	LD_N16R_A
	LD_BCR_A
	LD_DER_A
	LD_HLR_N8
	LD_N16R_SP
	LD_R8_R8
	LD_SP_HL
	PUSH_R16
	ADD_A_R8
	ADD_A_N8
	ADD_A_HLR
	INC_R8
	INC_HLR
	INC_R16SP
	ADD_HL_R16SP
	LD_HLSP_S8
	SUB_A_R8
	SUB_A_N8
	SUB_A_HLR
	DEC_R8
	DEC_HLR
	CP_A_R8
	CP_A_N8
	CP_A_HLR
	DEC_R16SP
	AND_A_N8
	AND_A_R8
	AND_A_HLR
	OR_A_R8
	OR_A_N8
	OR_A_HLR
	XOR_A_R8
	XOR_A_N8
	XOR_A_HLR
	CPL
	ROTCA
	ROTA
	ROTC_R8
	ROT_R8
	ROTC_HLR
	ROT_HLR
	SWAP_R8
	SWAP_HLR
	SLA_R8
	SRA_R8
	SRL_R8
	SLA_HLR
	SRA_HLR
	SRL_HLR
	BIT_U3_R8
	BIT_U3_HLR
	CHG_U3_R8
	CHG_U3_HLR
	DAA
	SCCF
	JP_HL
	JP_N16
	JP_CC_N16
	JR_E8
	JR_CC_E8
	CALL_N16
	CALL_CC_N16
	RST_U3
	RET
	RET_CC
	EDI
	RETI
	HALT
	STOP
	numFamilies
)

var familyNames = [...]string{
	NOP:          "NOP",
	LD_R8_HLR:    "LD_R8_HLR",
	LD_A_HLRU:    "LD_A_HLRU",
	LD_A_N8R:     "LD_A_N8R",
	LD_A_CR:      "LD_A_CR",
	LD_A_N16R:    "LD_A_N16R",
	LD_A_BCR:     "LD_A_BCR",
	LD_A_DER:     "LD_A_DER",
	LD_R8_N8:     "LD_R8_N8",
	LD_R16SP_N16: "LD_R16SP_N16",
	POP_R16:      "POP_R16",
	LD_HLR_R8:    "LD_HLR_R8",
	LD_HLRU_A:    "LD_HLRU_A",
	LD_N8R_A:     "LD_N8R_A",
	LD_CR_A:      "LD_CR_A",
	LD_N16R_A:    "LD_N16R_A",
	LD_BCR_A:     "LD_BCR_A",
	LD_DER_A:     "LD_DER_A",
	LD_HLR_N8:    "LD_HLR_N8",
	LD_N16R_SP:   "LD_N16R_SP",
	LD_R8_R8:     "LD_R8_R8",
	LD_SP_HL:     "LD_SP_HL",
	PUSH_R16:     "PUSH_R16",
	ADD_A_R8:     "ADD_A_R8",
	ADD_A_N8:     "ADD_A_N8",
	ADD_A_HLR:    "ADD_A_HLR",
	INC_R8:       "INC_R8",
	INC_HLR:      "INC_HLR",
	INC_R16SP:    "INC_R16SP",
	ADD_HL_R16SP: "ADD_HL_R16SP",
	LD_HLSP_S8:   "LD_HLSP_S8",
	SUB_A_R8:     "SUB_A_R8",
	SUB_A_N8:     "SUB_A_N8",
	SUB_A_HLR:    "SUB_A_HLR",
	DEC_R8:       "DEC_R8",
	DEC_HLR:      "DEC_HLR",
	CP_A_R8:      "CP_A_R8",
	CP_A_N8:      "CP_A_N8",
	CP_A_HLR:     "CP_A_HLR",
	DEC_R16SP:    "DEC_R16SP",
	AND_A_N8:     "AND_A_N8",
	AND_A_R8:     "AND_A_R8",
	AND_A_HLR:    "AND_A_HLR",
	OR_A_R8:      "OR_A_R8",
	OR_A_N8:      "OR_A_N8",
	OR_A_HLR:     "OR_A_HLR",
	XOR_A_R8:     "XOR_A_R8",
	XOR_A_N8:     "XOR_A_N8",
	XOR_A_HLR:    "XOR_A_HLR",
	CPL:          "CPL",
	ROTCA:        "ROTCA",
	ROTA:         "ROTA",
	ROTC_R8:      "ROTC_R8",
	ROT_R8:       "ROT_R8",
	ROTC_HLR:     "ROTC_HLR",
	ROT_HLR:      "ROT_HLR",
	SWAP_R8:      "SWAP_R8",
	SWAP_HLR:     "SWAP_HLR",
	SLA_R8:       "SLA_R8",
	SRA_R8:       "SRA_R8",
	SRL_R8:       "SRL_R8",
	SLA_HLR:      "SLA_HLR",
	SRA_HLR:      "SRA_HLR",
	SRL_HLR:      "SRL_HLR",
	BIT_U3_R8:    "BIT_U3_R8",
	BIT_U3_HLR:   "BIT_U3_HLR",
	CHG_U3_R8:    "CHG_U3_R8",
	CHG_U3_HLR:   "CHG_U3_HLR",
	DAA:          "DAA",
	SCCF:         "SCCF",
	JP_HL:        "JP_HL",
	JP_N16:       "JP_N16",
	JP_CC_N16:    "JP_CC_N16",
	JR_E8:        "JR_E8",
	JR_CC_E8:     "JR_CC_E8",
	CALL_N16:     "CALL_N16",
	CALL_CC_N16:  "CALL_CC_N16",
	RST_U3:       "RST_U3",
	RET:          "RET",
	RET_CC:       "RET_CC",
	EDI:          "EDI",
	RETI:         "RETI",
	HALT:         "HALT",
	STOP:         "STOP",
}

func (f Family) String() string {
	if f < 0 || f >= numFamilies {
		return "unknown family"
	}
	return familyNames[f]
}
