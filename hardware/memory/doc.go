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

// Package memory implements the plain memory components of the DMG.
//
// RAM and ROM are byte stores indexed from zero. They are not bus components
// themselves. A RAMController connects a RAM to the bus by mapping a window of
// the address space onto it. More than one RAMController can share the same
// RAM, which is how the echo RAM mirrors the work RAM.
//
// The BootROMController wraps the cartridge and shadows the first 256 bytes of
// the cartridge ROM with the boot ROM until the boot ROM is disabled.
package memory
