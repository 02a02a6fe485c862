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

	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
)

// Register identifies one of the LCD registers.
type Register int

// List of LCD registers in address order.
const (
	LCDC Register = iota
	STAT
	SCY
	SCX
	LY
	LYC
	DMA
	BGP
	OBP0
	OBP1
	WY
	WX
	numRegisters
)

func (r Register) String() string {
	if r < 0 || r >= numRegisters {
		return fmt.Sprintf("register(%d)", int(r))
	}
	return bus.Symbol(r.Address())
}

// Address returns the bus address of the register.
func (r Register) Address() uint16 {
	return addresses.LCDRegsStart + uint16(r)
}

// bits of the LCDC register.
const (
	lcdcBG         = 0x01
	lcdcOBJ        = 0x02
	lcdcOBJSize    = 0x04
	lcdcBGArea     = 0x08
	lcdcTileSource = 0x10
	lcdcWin        = 0x20
	lcdcWinArea    = 0x40
	lcdcStatus     = 0x80
)

// bits of the STAT register. the lowest two bits are the current mode.
const (
	statMode     = 0x03
	statLYCEqLY  = 0x04
	statIntMode0 = 0x08
	statIntMode1 = 0x10
	statIntMode2 = 0x20
	statIntLYC   = 0x40

	// bits of STAT that are not writable by the CPU
	statReadOnly = statMode | statLYCEqLY
)

// Mode is the mode of the LCD controller. The values are those that appear in
// the STAT register.
type Mode int

// List of valid modes.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBLANK"
	case VBlank:
		return "VBLANK"
	case OAMSearch:
		return "OAM"
	case PixelTransfer:
		return "TRANSFER"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

type registerFile [numRegisters]uint8

func (regs registerFile) String() string {
	s := strings.Builder{}
	for r := LCDC; r < numRegisters; r++ {
		if r > LCDC {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%s=%#02x", r, regs[r]))
	}
	return s.String()
}

func (regs *registerFile) test(r Register, mask uint8) bool {
	return regs[r]&mask != 0
}

func (regs *registerFile) setBits(r Register, mask uint8, on bool) {
	if on {
		regs[r] |= mask
	} else {
		regs[r] &^= mask
	}
}
