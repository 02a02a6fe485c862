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

package cpu

import (
	"fmt"
	"math"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/alu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
)

// Sentinal errors returned by Cycle().
const (
	UnimplementedInstruction = "cpu: unimplemented instruction (%v)"
	UndefinedOpcode          = "cpu: undefined opcode (%#02x) at %#04x"
	StopInstruction          = "cpu: STOP instruction at %#04x"
)

// the value of nextNonIdle while the CPU is halted
const never = math.MaxUint64

// bits of the IE and IF registers that are connected to an interrupt source
const interruptLines = 0x1f

// number of machine cycles taken to service an interrupt
const interruptCycles = 5

// CPU implements the processor of the DMG.
type CPU struct {
	Regs registers.File
	PC   uint16
	SP   uint16

	// interrupt master enable
	IME bool

	// interrupt enable and interrupt flag registers
	IE uint8
	IF uint8

	// the result of the most recent step
	LastResult Result

	mem     *bus.Bus
	highRAM *memory.RAM

	// the cycle on which the next step will take place
	nextNonIdle uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// must still be attached to the bus.
func NewCPU(mem *bus.Bus) *CPU {
	return &CPU{
		mem:     mem,
		highRAM: memory.NewRAM(addresses.HighRAMSize),
	}
}

func (cpu *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%#04x SP=%#04x %s", cpu.PC, cpu.SP, cpu.Regs.String()))
	s.WriteString(fmt.Sprintf(" [%s]", alu.FlagString(cpu.Regs.Get(registers.F))))
	if cpu.IME {
		s.WriteString(" IME")
	}
	s.WriteString(fmt.Sprintf(" %s=%#02x %s=%#02x", bus.Symbol(addresses.IE), cpu.IE, bus.Symbol(addresses.IF), cpu.IF))
	if cpu.Halted() {
		s.WriteString(" HALTED")
	}
	return s.String()
}

// Reset the CPU to the power-on state.
func (cpu *CPU) Reset() {
	cpu.Regs.Reset()
	cpu.PC = 0
	cpu.SP = 0
	cpu.IME = false
	cpu.IE = 0
	cpu.IF = 0
	cpu.nextNonIdle = 0
	cpu.LastResult = Result{}
	for i := 0; i < cpu.highRAM.Size(); i++ {
		cpu.highRAM.Write(i, 0)
	}
}

// PostBoot sets the registers to the values they have after the boot ROM has
// completed. Used when running without a boot ROM.
func (cpu *CPU) PostBoot() {
	cpu.Regs.SetPair(registers.AF, 0x01b0)
	cpu.Regs.SetPair(registers.BC, 0x0013)
	cpu.Regs.SetPair(registers.DE, 0x00d8)
	cpu.Regs.SetPair(registers.HL, 0x014d)
	cpu.SP = 0xfffe
	cpu.PC = addresses.HeaderEntry
}

// Halted returns true if the CPU is waiting for an interrupt.
func (cpu *CPU) Halted() bool {
	return cpu.nextNonIdle == never
}

// RequestInterrupt implements the interrupts.Requester interface.
func (cpu *CPU) RequestInterrupt(i interrupts.Interrupt) {
	cpu.IF |= i.Mask()
}

// Read implements the bus.Component interface.
func (cpu *CPU) Read(address uint16) (uint8, bool) {
	switch {
	case address >= addresses.HighRAMStart && address < addresses.HighRAMEnd:
		return cpu.highRAM.Read(int(address) - addresses.HighRAMStart), true
	case address == addresses.IE:
		return cpu.IE, true
	case address == addresses.IF:
		return cpu.IF, true
	}
	return 0, false
}

// Write implements the bus.Component interface.
func (cpu *CPU) Write(address uint16, data uint8) {
	switch {
	case address >= addresses.HighRAMStart && address < addresses.HighRAMEnd:
		cpu.highRAM.Write(int(address)-addresses.HighRAMStart, data)
	case address == addresses.IE:
		cpu.IE = data
	case address == addresses.IF:
		cpu.IF = data
	}
}

// Cycle implements the clocks.Clocked interface.
func (cpu *CPU) Cycle(cycle uint64) error {
	if cycle == cpu.nextNonIdle {
		return cpu.step()
	}

	if cpu.IE&cpu.IF&interruptLines != 0 && cpu.nextNonIdle == never {
		cpu.nextNonIdle = cycle
		return cpu.step()
	}

	return nil
}

// step either services the highest priority interrupt or executes the
// instruction at the PC.
func (cpu *CPU) step() error {
	pending := cpu.IE & cpu.IF & interruptLines

	if cpu.IME && pending != 0 {
		i := highestPriority(pending)
		cpu.LastResult = Result{Address: cpu.PC, Interrupt: i, Cycles: interruptCycles}

		cpu.IME = false
		cpu.IF &^= i.Mask()
		cpu.push16(cpu.PC)
		cpu.PC = i.Vector()
		cpu.nextNonIdle += interruptCycles

		return nil
	}

	opcode := cpu.read8(cpu.PC)

	var defn *instructions.Definition
	if opcode == instructions.Prefix {
		defn = instructions.Prefixed(cpu.read8AfterOpcode())
	} else {
		defn = instructions.Direct(opcode)
	}

	if defn == nil {
		return curated.Errorf(UndefinedOpcode, opcode, cpu.PC)
	}

	return cpu.dispatch(defn)
}

// highestPriority returns the interrupt with the lowest bit index in pending.
func highestPriority(pending uint8) interrupts.Interrupt {
	for i := interrupts.VBlank; i < interrupts.NumInterrupts; i++ {
		if pending&i.Mask() != 0 {
			return i
		}
	}
	panic("cpu: no pending interrupt")
}

func (cpu *CPU) read8(address uint16) uint8 {
	return cpu.mem.Read(address)
}

func (cpu *CPU) read16(address uint16) uint16 {
	return uint16(cpu.read8(address+1))<<8 | uint16(cpu.read8(address))
}

func (cpu *CPU) read8AfterOpcode() uint8 {
	return cpu.read8(cpu.PC + 1)
}

func (cpu *CPU) read16AfterOpcode() uint16 {
	return cpu.read16(cpu.PC + 1)
}

func (cpu *CPU) read8AtHL() uint8 {
	return cpu.read8(cpu.Regs.GetPair(registers.HL))
}

func (cpu *CPU) write8(address uint16, data uint8) {
	cpu.mem.Write(address, data)
}

func (cpu *CPU) write16(address uint16, data uint16) {
	cpu.write8(address, uint8(data))
	cpu.write8(address+1, uint8(data>>8))
}

func (cpu *CPU) write8AtHL(data uint8) {
	cpu.write8(cpu.Regs.GetPair(registers.HL), data)
}

func (cpu *CPU) push16(data uint16) {
	cpu.SP -= 2
	cpu.write16(cpu.SP, data)
}

func (cpu *CPU) pop16() uint16 {
	v := cpu.read16(cpu.SP)
	cpu.SP += 2
	return v
}
