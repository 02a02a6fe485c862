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

package cpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

// flat memory answering every address not answered by the CPU
type flat struct {
	data [0x10000]uint8
}

func (mem *flat) Read(address uint16) (uint8, bool) {
	return mem.data[address], true
}

func (mem *flat) Write(address uint16, data uint8) {
	mem.data[address] = data
}

type harness struct {
	t     *testing.T
	cpu   *cpu.CPU
	mem   *flat
	cycle uint64
}

func newHarness(t *testing.T, program ...uint8) *harness {
	t.Helper()

	b := bus.NewBus()
	h := &harness{
		t:   t,
		cpu: cpu.NewCPU(b),
		mem: &flat{},
	}
	copy(h.mem.data[:], program)

	test.DemandSuccess(t, b.Attach(h.cpu))
	test.DemandSuccess(t, b.Attach(h.mem))

	return h
}

// run the CPU for the number of cycles
func (h *harness) run(cycles int) {
	h.t.Helper()
	for i := 0; i < cycles; i++ {
		test.DemandSuccess(h.t, h.cpu.Cycle(h.cycle))
		h.cycle++
	}
}

func TestNOP(t *testing.T) {
	h := newHarness(t)
	h.run(10)
	test.ExpectEquality(t, h.cpu.PC, 10)
	test.ExpectEquality(t, h.cpu.LastResult.Defn.Mnemonic, "NOP")
}

func TestAddFlags(t *testing.T) {
	// LD A,0x3a; LD B,0xc6; ADD A,B
	h := newHarness(t, 0x3e, 0x3a, 0x06, 0xc6, 0x80)
	h.run(5)
	test.ExpectEquality(t, h.cpu.PC, 5)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0x00)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0xb0)
}

func TestIncDecFlags(t *testing.T) {
	// SCF; LD B,0xff; INC B; DEC B
	h := newHarness(t, 0x37, 0x06, 0xff, 0x04, 0x05)
	h.run(4)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.B), 0x00)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0xb0)
	h.run(1)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.B), 0xff)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x70)
}

func TestCarryFlagInstructions(t *testing.T) {
	// SCF; CCF; CCF
	h := newHarness(t, 0x37, 0x3f, 0x3f)
	h.run(1)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x10)
	h.run(1)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x00)
	h.run(1)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x10)
}

func TestDAA(t *testing.T) {
	// LD A,0x15; ADD A,0x27; DAA
	h := newHarness(t, 0x3e, 0x15, 0xc6, 0x27, 0x27)
	h.run(4)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0x3c)
	h.run(1)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0x42)
}

func TestPushPop(t *testing.T) {
	// LD SP,0xfffe; LD BC,0x1234; PUSH BC; POP DE
	h := newHarness(t, 0x31, 0xfe, 0xff, 0x01, 0x34, 0x12, 0xc5, 0xd1)
	h.run(10)
	test.ExpectEquality(t, h.cpu.SP, 0xfffc)

	// the stack is in high RAM, which is answered by the CPU
	v, ok := h.cpu.Read(0xfffc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x34)
	v, _ = h.cpu.Read(0xfffd)
	test.ExpectEquality(t, v, 0x12)

	h.run(3)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.DE), 0x1234)
	test.ExpectEquality(t, h.cpu.SP, 0xfffe)
}

func TestPopAF(t *testing.T) {
	// LD SP,0xfffe; LD BC,0x12ff; PUSH BC; POP AF
	h := newHarness(t, 0x31, 0xfe, 0xff, 0x01, 0xff, 0x12, 0xc5, 0xf1)
	h.run(13)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0x12)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0xf0)
}

func TestHLIncrement(t *testing.T) {
	// LD HL,0xc000; LD A,5; LD (HL+),A; LD (HL-),A
	h := newHarness(t, 0x21, 0x00, 0xc0, 0x3e, 0x05, 0x22, 0x32)
	h.run(7)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.HL), 0xc001)
	test.ExpectEquality(t, h.mem.data[0xc000], 0x05)
	h.run(2)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.HL), 0xc000)
	test.ExpectEquality(t, h.mem.data[0xc001], 0x05)
}

func TestStackPointerArithmetic(t *testing.T) {
	// LD SP,0xfff8; LD HL,SP+2; ADD SP,-8
	h := newHarness(t, 0x31, 0xf8, 0xff, 0xf8, 0x02, 0xe8, 0xf8)
	h.run(6)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.HL), 0xfffa)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x00)
	h.run(4)
	test.ExpectEquality(t, h.cpu.SP, 0xfff0)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x30)
}

func TestHighPage(t *testing.T) {
	// LD A,0x42; LDH (0x80),A; LD A,0; LDH A,(0x80)
	h := newHarness(t, 0x3e, 0x42, 0xe0, 0x80, 0x3e, 0x00, 0xf0, 0x80)
	h.run(5)
	v, _ := h.cpu.Read(0xff80)
	test.ExpectEquality(t, v, 0x42)
	h.run(5)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0x42)
}

func TestPrefixed(t *testing.T) {
	// LD A,0x0f; SWAP A; BIT 7,A; LD HL,0xc000; SET 0,(HL)
	h := newHarness(t, 0x3e, 0x0f, 0xcb, 0x37, 0xcb, 0x7f, 0x21, 0x00, 0xc0, 0xcb, 0xc6)
	h.run(4)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.A), 0xf0)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x00)
	test.ExpectEquality(t, h.cpu.LastResult.Defn.Mnemonic, "SWAP A")
	h.run(2)
	test.ExpectEquality(t, h.cpu.Regs.Get(registers.F), 0x20)
	h.run(7)
	test.ExpectEquality(t, h.mem.data[0xc000], 0x01)
	test.ExpectEquality(t, h.cpu.PC, 11)
}

func TestConditionalJumps(t *testing.T) {
	// XOR A; JR NZ,5; JR Z,2; ...; JR -2
	h := newHarness(t, 0xaf, 0x20, 0x05, 0x28, 0x02, 0x00, 0x00, 0x18, 0xfe)
	h.run(3)
	test.ExpectEquality(t, h.cpu.PC, 3)
	test.ExpectEquality(t, h.cpu.LastResult.Cycles, 2)
	h.run(3)
	test.ExpectEquality(t, h.cpu.PC, 7)
	test.ExpectEquality(t, h.cpu.LastResult.Cycles, 3)

	// jump to self
	h.run(3)
	test.ExpectEquality(t, h.cpu.PC, 7)
	h.run(3)
	test.ExpectEquality(t, h.cpu.PC, 7)
}

func TestCallReturn(t *testing.T) {
	// LD SP,0xd000; CALL 0x0010
	h := newHarness(t, 0x31, 0x00, 0xd0, 0xcd, 0x10, 0x00)
	h.mem.data[0x10] = 0xc9 // RET

	h.run(9)
	test.ExpectEquality(t, h.cpu.PC, 0x10)
	test.ExpectEquality(t, h.cpu.SP, 0xcffe)
	test.ExpectEquality(t, h.mem.data[0xcffe], 0x06)
	test.ExpectEquality(t, h.mem.data[0xcfff], 0x00)

	h.run(4)
	test.ExpectEquality(t, h.cpu.PC, 0x06)
	test.ExpectEquality(t, h.cpu.SP, 0xd000)
}

func TestConditionalCall(t *testing.T) {
	// XOR A; CALL NZ,0x1000; CALL Z,0x2000
	h := newHarness(t, 0xaf, 0xc4, 0x00, 0x10, 0xcc, 0x00, 0x20)
	h.run(4)
	test.ExpectEquality(t, h.cpu.PC, 4)
	h.run(6)
	test.ExpectEquality(t, h.cpu.PC, 0x2000)
	test.ExpectEquality(t, h.cpu.LastResult.Cycles, 6)
}

func TestRestart(t *testing.T) {
	// LD SP,0xd000; RST 28h
	h := newHarness(t, 0x31, 0x00, 0xd0, 0xef)
	h.run(7)
	test.ExpectEquality(t, h.cpu.PC, 0x28)
	test.ExpectEquality(t, h.mem.data[0xcffe], 0x04)
}

func TestInterrupt(t *testing.T) {
	// LD SP,0xfffe; EI
	h := newHarness(t, 0x31, 0xfe, 0xff, 0xfb)
	h.cpu.Write(0xffff, interrupts.Timer.Mask())
	h.cpu.RequestInterrupt(interrupts.Timer)

	h.run(5)
	test.ExpectEquality(t, h.cpu.PC, interrupts.Timer.Vector())
	test.ExpectFailure(t, h.cpu.IME)
	test.ExpectEquality(t, h.cpu.IF, 0x00)
	test.ExpectEquality(t, h.cpu.SP, 0xfffc)
	test.ExpectEquality(t, h.cpu.LastResult.Interrupt, interrupts.Timer)
	test.ExpectEquality(t, h.cpu.LastResult.Defn == nil, true)

	v, _ := h.cpu.Read(0xfffc)
	test.ExpectEquality(t, v, 0x04)
}

func TestInterruptPriority(t *testing.T) {
	// LD SP,0xd000; EI
	h := newHarness(t, 0x31, 0x00, 0xd0, 0xfb)
	h.cpu.IE = 0x1f
	h.cpu.RequestInterrupt(interrupts.Joypad)
	h.cpu.RequestInterrupt(interrupts.LCDStat)

	h.run(5)
	test.ExpectEquality(t, h.cpu.PC, interrupts.LCDStat.Vector())
	test.ExpectEquality(t, h.cpu.IF, interrupts.Joypad.Mask())
}

func TestHaltWithoutIME(t *testing.T) {
	h := newHarness(t, 0x76)
	h.run(100)
	test.ExpectSuccess(t, h.cpu.Halted())
	test.ExpectEquality(t, h.cpu.PC, 1)

	// a pending interrupt wakes the CPU even though it is not serviced
	h.cpu.IE = interrupts.VBlank.Mask()
	h.cpu.RequestInterrupt(interrupts.VBlank)
	h.run(1)
	test.ExpectFailure(t, h.cpu.Halted())
	test.ExpectEquality(t, h.cpu.PC, 2)
	test.ExpectEquality(t, h.cpu.IF, interrupts.VBlank.Mask())
}

func TestHaltLogged(t *testing.T) {
	logger.Clear()
	h := newHarness(t, 0x00, 0x76)
	h.run(100)
	test.DemandSuccess(t, h.cpu.Halted())

	// remaining halted does not add to the log
	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "CPU: HALT at "))
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 1)
}

func TestHaltWithIME(t *testing.T) {
	// LD SP,0xdffe; EI; HALT
	h := newHarness(t, 0x31, 0xfe, 0xdf, 0xfb, 0x76)
	h.run(10)
	test.ExpectSuccess(t, h.cpu.Halted())
	test.ExpectEquality(t, h.cpu.PC, 5)

	// an interrupt that is not enabled does not wake the CPU
	h.cpu.RequestInterrupt(interrupts.Serial)
	h.run(10)
	test.ExpectSuccess(t, h.cpu.Halted())

	h.cpu.IE = interrupts.VBlank.Mask()
	h.cpu.RequestInterrupt(interrupts.VBlank)
	h.run(1)
	test.ExpectFailure(t, h.cpu.Halted())
	test.ExpectEquality(t, h.cpu.PC, interrupts.VBlank.Vector())
	test.ExpectEquality(t, h.mem.data[0xdffc], 0x05)

	// servicing the interrupt takes five cycles
	h.run(5)
	test.ExpectEquality(t, h.cpu.PC, interrupts.VBlank.Vector()+1)
}

func TestStop(t *testing.T) {
	h := newHarness(t, 0x10, 0x00)
	err := h.cpu.Cycle(0)
	test.ExpectSuccess(t, curated.Is(err, cpu.StopInstruction))
}

func TestUndefinedOpcode(t *testing.T) {
	h := newHarness(t, 0xd3)
	err := h.cpu.Cycle(0)
	test.ExpectSuccess(t, curated.Is(err, cpu.UndefinedOpcode))
}

func TestString(t *testing.T) {
	h := newHarness(t, 0x76)
	h.cpu.IE = interrupts.VBlank.Mask()
	h.run(1)

	s := h.cpu.String()
	test.ExpectSuccess(t, strings.Contains(s, "IE=0x01 IF=0x00"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "HALTED"))
}

func TestComponent(t *testing.T) {
	h := newHarness(t)

	_, ok := h.cpu.Read(0xc000)
	test.ExpectFailure(t, ok)

	h.cpu.Write(0xff0f, 0x05)
	v, ok := h.cpu.Read(0xff0f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x05)

	h.cpu.Write(0xfffe, 0xaa)
	v, _ = h.cpu.Read(0xfffe)
	test.ExpectEquality(t, v, 0xaa)
}

func TestPostBoot(t *testing.T) {
	h := newHarness(t)
	h.cpu.PostBoot()
	test.ExpectEquality(t, h.cpu.PC, 0x0100)
	test.ExpectEquality(t, h.cpu.SP, 0xfffe)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.AF), 0x01b0)
	test.ExpectEquality(t, h.cpu.Regs.GetPair(registers.HL), 0x014d)
}
