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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal errors returned by NewCartridge() and Load().
const (
	UnsupportedType    = "cartridge: unsupported cartridge type (%#02x)"
	UnsupportedRAMSize = "cartridge: unsupported RAM size code (%#02x)"
	BadSize            = "cartridge: %s cartridge must be %d bytes (not %d)"
	NoHeader           = "cartridge: image too small to contain a header (%d bytes)"
	LoadError          = "cartridge: %v"
)

// ramSizes is indexed by the RAM size code in the cartridge header.
var ramSizes = [...]int{0, 2048, 8192, 32768}

// mapper is implemented by the memory bank controllers.
type mapper interface {
	bus.Component
	ID() string
}

// Cartridge is the bus component for the cartridge slot. It answers the
// cartridge ROM and cartridge RAM address ranges.
type Cartridge struct {
	mapper mapper

	// values from the cartridge header
	Title    string
	Type     uint8
	RAMBytes int
}

// NewCartridge creates a cartridge from the image. The image must contain a
// valid header.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) <= addresses.HeaderRAMSize {
		return nil, curated.Errorf(NoHeader, len(data))
	}

	cart := &Cartridge{
		Title: parseTitle(data[addresses.HeaderTitle:addresses.HeaderTitleEnd]),
		Type:  data[addresses.HeaderCartType],
	}

	switch cart.Type {
	case 0x00:
		if len(data) != addresses.CartROMSize {
			return nil, curated.Errorf(BadSize, "MBC0", addresses.CartROMSize, len(data))
		}
		cart.mapper = newMBC0(data)

	case 0x01, 0x02, 0x03:
		code := data[addresses.HeaderRAMSize]
		if int(code) >= len(ramSizes) {
			return nil, curated.Errorf(UnsupportedRAMSize, code)
		}
		cart.RAMBytes = ramSizes[code]
		cart.mapper = newMBC1(data, cart.RAMBytes)

	default:
		return nil, curated.Errorf(UnsupportedType, cart.Type)
	}

	logger.Logf(logger.Allow, "cartridge", "%s (%s)", cart.Title, cart.mapper.ID())

	return cart, nil
}

// Load reads the cartridge image from a file and creates a cartridge.
func Load(filename string) (*Cartridge, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	return NewCartridge(data)
}

func (cart *Cartridge) String() string {
	if cart.Title == "" {
		return cart.mapper.ID()
	}
	return fmt.Sprintf("%s [%s]", cart.Title, cart.mapper.ID())
}

// ID returns the name of the memory bank controller.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Read implements the bus.Component interface.
func (cart *Cartridge) Read(address uint16) (uint8, bool) {
	return cart.mapper.Read(address)
}

// Write implements the bus.Component interface.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.Write(address, data)
}

// the title is padded with zeros. some later cartridges use the end of the
// title field for other information
func parseTitle(b []uint8) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0x00 {
			break
		}
		if c < 0x20 || c > 0x7e {
			continue
		}
		s.WriteByte(c)
	}
	return strings.TrimSpace(s.String())
}
