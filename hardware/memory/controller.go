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

import "fmt"

// RAMController maps the addresses in the range [start, end) onto a RAM. The
// first address of the range reads from the first byte of the RAM.
type RAMController struct {
	ram   *RAM
	start int
	end   int
}

// NewRAMController is the preferred method of initialisation for the
// RAMController type. The range must not be larger than the RAM.
func NewRAMController(ram *RAM, start int, end int) *RAMController {
	if ram == nil {
		panic("memory: RAM controller requires a RAM")
	}
	if start < 0 || end > 0x10000 || start > end {
		panic(fmt.Sprintf("memory: invalid RAM controller range (%#04x to %#04x)", start, end))
	}
	if end-start > ram.Size() {
		panic(fmt.Sprintf("memory: RAM controller range (%#04x to %#04x) is larger than RAM", start, end))
	}
	return &RAMController{
		ram:   ram,
		start: start,
		end:   end,
	}
}

func (ctrl *RAMController) String() string {
	return fmt.Sprintf("RAM %#04x to %#04x", ctrl.start, ctrl.end-1)
}

func (ctrl *RAMController) contains(address uint16) bool {
	return int(address) >= ctrl.start && int(address) < ctrl.end
}

// Read implements the bus.Component interface.
func (ctrl *RAMController) Read(address uint16) (uint8, bool) {
	if !ctrl.contains(address) {
		return 0, false
	}
	return ctrl.ram.Read(int(address) - ctrl.start), true
}

// Write implements the bus.Component interface.
func (ctrl *RAMController) Write(address uint16, data uint8) {
	if ctrl.contains(address) {
		ctrl.ram.Write(int(address)-ctrl.start, data)
	}
}
