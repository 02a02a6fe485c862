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
	"fmt"
	"strings"
)

// RAM is a fixed size, writable byte store.
type RAM struct {
	data []uint8
}

// NewRAM creates a new RAM of size bytes, all zero.
func NewRAM(size int) *RAM {
	if size < 0 {
		panic(fmt.Sprintf("memory: invalid RAM size (%d)", size))
	}
	return &RAM{data: make([]uint8, size)}
}

// Size returns the number of bytes in the RAM.
func (ram *RAM) Size() int {
	return len(ram.data)
}

// Read the byte at the index.
func (ram *RAM) Read(index int) uint8 {
	if index < 0 || index >= len(ram.data) {
		panic(fmt.Sprintf("memory: RAM index (%#04x) out of range", index))
	}
	return ram.data[index]
}

// Write the byte at the index.
func (ram *RAM) Write(index int, data uint8) {
	if index < 0 || index >= len(ram.data) {
		panic(fmt.Sprintf("memory: RAM index (%#04x) out of range", index))
	}
	ram.data[index] = data
}

// String returns a hex dump of the RAM.
func (ram *RAM) String() string {
	return dump(ram.data)
}

// ROM is a fixed size, read-only byte store.
type ROM struct {
	data []uint8
}

// NewROM creates a ROM with a copy of the data.
func NewROM(data []uint8) *ROM {
	rom := &ROM{data: make([]uint8, len(data))}
	copy(rom.data, data)
	return rom
}

// Size returns the number of bytes in the ROM.
func (rom *ROM) Size() int {
	return len(rom.data)
}

// Read the byte at the index.
func (rom *ROM) Read(index int) uint8 {
	if index < 0 || index >= len(rom.data) {
		panic(fmt.Sprintf("memory: ROM index (%#04x) out of range", index))
	}
	return rom.data[index]
}

func dump(data []uint8) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y*16 < len(data); y++ {
		s.WriteString(fmt.Sprintf("%03x- |  ", y))
		for x := 0; x < 16 && y*16+x < len(data); x++ {
			s.WriteString(fmt.Sprintf("%02x ", data[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
