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

package cartridge

import (
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/logger"
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// mbc1 implements the MBC1 memory bank controller. The controller has four
// registers, all of which are written through the cartridge ROM range:
//
//	0x0000 to 0x1fff	RAM enable (0x0a in the low nibble enables)
//	0x2000 to 0x3fff	bank1, the low five bits of the ROM bank
//	0x4000 to 0x5fff	bank2, the RAM bank or the upper two bits of the ROM bank
//	0x6000 to 0x7fff	mode
//
// In mode 0 bank2 only affects the switchable ROM bank. In mode 1 bank2 also
// selects the bank mapped to the fixed ROM area and the RAM bank.
type mbc1 struct {
	rom *memory.ROM
	ram *memory.RAM

	romMask int

	ramEnabled bool
	bank1      int
	bank2      int
	mode       int
}

func newMBC1(data []uint8, ramSize int) *mbc1 {
	cart := &mbc1{
		rom:   memory.NewROM(data),
		ram:   memory.NewRAM(ramSize),
		bank1: 1,
	}

	// the number of banks is rounded up to the next power of two so that the
	// mask wraps bank numbers that are beyond the end of the ROM
	banks := 1
	for banks*romBankSize < len(data) {
		banks <<= 1
	}
	cart.romMask = banks - 1

	return cart
}

func (cart *mbc1) ID() string {
	return "MBC1"
}

func (cart *mbc1) romRead(bank int, offset int) uint8 {
	idx := (bank&cart.romMask)*romBankSize + offset
	if idx >= cart.rom.Size() {
		return 0xff
	}
	return cart.rom.Read(idx)
}

func (cart *mbc1) ramIndex(address uint16) int {
	bank := 0
	if cart.mode == 1 {
		bank = cart.bank2
	}
	return (bank*ramBankSize + int(address) - addresses.CartRAMStart) % cart.ram.Size()
}

func (cart *mbc1) Read(address uint16) (uint8, bool) {
	switch {
	case address < romBankSize:
		bank := 0
		if cart.mode == 1 {
			bank = cart.bank2 << 5
		}
		return cart.romRead(bank, int(address)), true

	case address < addresses.CartROMEnd:
		bank := cart.bank2<<5 | cart.bank1
		return cart.romRead(bank, int(address)-romBankSize), true

	case address >= addresses.CartRAMStart && address < addresses.CartRAMEnd:
		if !cart.ramEnabled || cart.ram.Size() == 0 {
			return 0xff, true
		}
		return cart.ram.Read(cart.ramIndex(address)), true
	}

	return 0, false
}

func (cart *mbc1) Write(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a

	case address < 0x4000:
		bank1 := int(data & 0x1f)
		if bank1 == 0 {
			bank1 = 1
		}
		if bank1 != cart.bank1 {
			cart.bank1 = bank1
			logger.Logf(logger.Allow, "mbc1", "ROM bank register set to %d", bank1)
		}

	case address < 0x6000:
		bank2 := int(data & 0x03)
		if bank2 != cart.bank2 {
			cart.bank2 = bank2
			logger.Logf(logger.Allow, "mbc1", "upper bank register set to %d", bank2)
		}

	case address < addresses.CartROMEnd:
		mode := int(data & 0x01)
		if mode != cart.mode {
			cart.mode = mode
			logger.Logf(logger.Allow, "mbc1", "banking mode set to %d", mode)
		}

	case address >= addresses.CartRAMStart && address < addresses.CartRAMEnd:
		if cart.ramEnabled && cart.ram.Size() > 0 {
			cart.ram.Write(cart.ramIndex(address), data)
		}
	}
}
