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

// Package bus connects the components of the DMG. Each component answers reads
// and writes for some part of the 16bit address space.
//
// A read is offered to each attached component in the order in which they were
// attached. The first component to answer provides the value. If no component
// answers then the bus floats and the read returns 0xff.
//
// A write is broadcast to every attached component. Each component decides
// whether the address concerns it.
package bus

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// Component is implemented by every part of the DMG that is connected to the
// bus.
type Component interface {
	// Read returns the data at the address and true if the component answers
	// for the address. Returns false if the component has no data at the
	// address.
	Read(address uint16) (uint8, bool)

	// Write offers data for the address to the component. Components ignore
	// writes for addresses that they do not answer.
	Write(address uint16, data uint8)
}

// Floating is the value read from an address that no component answers.
const Floating = 0xff

// Sentinal error returned when a nil component is attached to the bus.
const NilComponent = "bus: cannot attach a nil component"

// Bus is the collection of attached components.
type Bus struct {
	components []Component
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		components: make([]Component, 0, 8),
	}
}

func (b *Bus) String() string {
	s := strings.Builder{}
	for i, c := range b.components {
		s.WriteString(fmt.Sprintf("%d: %T\n", i, c))
	}
	return s.String()
}

// Attach a component to the bus. The order in which components are attached
// determines the priority of reads.
func (b *Bus) Attach(c Component) error {
	if c == nil {
		return curated.Errorf(NilComponent)
	}
	b.components = append(b.components, c)
	return nil
}

// Read the address. Returns the value from the first component that answers,
// or Floating if no component answers.
func (b *Bus) Read(address uint16) uint8 {
	for _, c := range b.components {
		if v, ok := c.Read(address); ok {
			return v
		}
	}
	return Floating
}

// Write data to address. The data is offered to every attached component.
func (b *Bus) Write(address uint16, data uint8) {
	for _, c := range b.components {
		c.Write(address, data)
	}
}

// Symbol returns the canonical name of a register address, or the address
// formatted as a hexadecimal number.
func Symbol(address uint16) string {
	if s, ok := addresses.Symbols[address]; ok {
		return s
	}
	return fmt.Sprintf("%#04x", address)
}
