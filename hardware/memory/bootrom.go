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

package memory

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal error returned by NewBootROMController if the boot ROM is not the
// correct size.
const BadBootROM = "bootrom: boot ROM must be %d bytes (not %d)"

// BootROMController sits in front of the cartridge. While the boot ROM is
// enabled, reads from the first 256 addresses come from the boot ROM. All
// other accesses are passed to the cartridge.
//
// Any write to the BootROMDisable register disables the boot ROM. It cannot
// be enabled again.
type BootROMController struct {
	cart    bus.Component
	rom     *ROM
	enabled bool
}

// NewBootROMController is the preferred method of initialisation for the
// BootROMController type. If bootROM is nil the controller starts with the
// boot ROM disabled.
func NewBootROMController(cart bus.Component, bootROM []uint8) (*BootROMController, error) {
	ctrl := &BootROMController{cart: cart}

	if bootROM != nil {
		if len(bootROM) != addresses.BootROMSize {
			return nil, curated.Errorf(BadBootROM, addresses.BootROMSize, len(bootROM))
		}
		ctrl.rom = NewROM(bootROM)
		ctrl.enabled = true
	}

	return ctrl, nil
}

// Enabled returns true if the boot ROM is shadowing the cartridge.
func (ctrl *BootROMController) Enabled() bool {
	return ctrl.enabled
}

// Read implements the bus.Component interface.
func (ctrl *BootROMController) Read(address uint16) (uint8, bool) {
	if ctrl.enabled && address < addresses.BootROMEnd {
		return ctrl.rom.Read(int(address)), true
	}
	return ctrl.cart.Read(address)
}

// Write implements the bus.Component interface.
func (ctrl *BootROMController) Write(address uint16, data uint8) {
	if address == addresses.BootROMDisable && ctrl.enabled {
		ctrl.enabled = false
		logger.Log(logger.Allow, "bootrom", "boot ROM disabled")
	}
	ctrl.cart.Write(address, data)
}
