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
)

// mbc0 is a cartridge without a memory bank controller. The 32KB of ROM are
// mapped directly into the cartridge ROM range.
type mbc0 struct {
	rom *memory.ROM
}

func newMBC0(data []uint8) *mbc0 {
	return &mbc0{rom: memory.NewROM(data)}
}

func (cart *mbc0) ID() string {
	return "MBC0"
}

func (cart *mbc0) Read(address uint16) (uint8, bool) {
	if address < addresses.CartROMEnd {
		return cart.rom.Read(int(address)), true
	}
	return 0, false
}

// MBC0 cartridges ignore writes.
func (cart *mbc0) Write(_ uint16, _ uint8) {
}
