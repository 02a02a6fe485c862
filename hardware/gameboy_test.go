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

package hardware_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

// newPrefs creates preferences in a temporary resource directory
func newPrefs(t *testing.T, postBoot bool) *preferences.Preferences {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherdmg", 0700))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.PostBoot.Set(postBoot))
	return p
}

// a 32KB cartridge filled with NOP instructions
func nopCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.NewCartridge(make([]uint8, addresses.CartROMSize))
	test.DemandSuccess(t, err)
	return cart
}

func newGameBoy(t *testing.T, bootROM []uint8, postBoot bool) *hardware.GameBoy {
	t.Helper()
	gb, err := hardware.NewGameBoy(nopCartridge(t), bootROM, newPrefs(t, postBoot))
	test.DemandSuccess(t, err)
	return gb
}

func TestBadCartridge(t *testing.T) {
	_, err := cartridge.NewCartridge(make([]uint8, 32000))
	test.ExpectSuccess(t, curated.Is(err, cartridge.BadSize))

	_, err = hardware.NewGameBoy(nil, nil, nil)
	test.ExpectFailure(t, err)
}

func TestNOPFrame(t *testing.T) {
	gb := newGameBoy(t, nil, false)
	gb.Mem.Write(addresses.BGP, 0xe4)
	gb.Mem.Write(addresses.LCDC, 0x91)

	test.DemandSuccess(t, gb.RunUntil(clocks.CyclesPerFrame))
	test.ExpectEquality(t, gb.Cycles(), uint64(clocks.CyclesPerFrame))
	test.ExpectEquality(t, gb.FrameCount(), 1)

	// every NOP takes a single cycle
	test.ExpectEquality(t, gb.CPU.PC, uint16(clocks.CyclesPerFrame))

	test.ExpectSuccess(t, gb.LCD.CurrentImage().Equal(lcd.BlankImage(lcd.Width, lcd.Height)))
}

func TestTargetBehind(t *testing.T) {
	gb := newGameBoy(t, nil, false)
	test.ExpectSuccess(t, gb.RunUntil(100))

	err := gb.RunUntil(50)
	test.ExpectSuccess(t, curated.Is(err, hardware.TargetBehind))
	test.ExpectEquality(t, gb.Cycles(), uint64(100))

	// running to the current cycle does nothing
	test.ExpectSuccess(t, gb.RunUntil(100))
	test.ExpectEquality(t, gb.Cycles(), uint64(100))
}

func TestFaultIsSticky(t *testing.T) {
	data := make([]uint8, addresses.CartROMSize)
	data[0x0010] = 0x10
	cart, err := cartridge.NewCartridge(data)
	test.DemandSuccess(t, err)

	gb, err := hardware.NewGameBoy(cart, nil, newPrefs(t, false))
	test.DemandSuccess(t, err)

	err = gb.RunUntil(100)
	test.DemandSuccess(t, curated.Is(err, cpu.StopInstruction))

	// the faulting cycle counts as emulated
	test.ExpectEquality(t, gb.Cycles(), uint64(17))

	cycles := gb.Cycles()
	counter := gb.Timer.Counter
	for range 3 {
		err = gb.RunUntil(100)
		test.ExpectSuccess(t, curated.Is(err, cpu.StopInstruction))
		test.ExpectEquality(t, gb.Cycles(), cycles)
		test.ExpectEquality(t, gb.Timer.Counter, counter)
	}

	// reset clears the fault
	gb.Reset()
	test.ExpectSuccess(t, gb.RunUntil(10))
	test.ExpectEquality(t, gb.Cycles(), uint64(10))
}

func TestPostBoot(t *testing.T) {
	gb := newGameBoy(t, nil, true)
	test.ExpectEquality(t, gb.CPU.PC, uint16(addresses.HeaderEntry))
	test.ExpectEquality(t, gb.CPU.SP, uint16(0xfffe))
	test.ExpectEquality(t, gb.Mem.Read(addresses.LCDC), 0x91)

	test.ExpectSuccess(t, gb.RunUntil(clocks.CyclesPerFrame))
	test.ExpectEquality(t, gb.FrameCount(), 1)
}

func TestBootROM(t *testing.T) {
	bootROM := make([]uint8, addresses.BootROMSize)

	// LD A,$01
	// LDH ($50),A
	copy(bootROM, []uint8{0x3e, 0x01, 0xe0, 0x50})

	// post boot values are not used when there is a boot ROM
	gb := newGameBoy(t, bootROM, true)
	test.ExpectEquality(t, gb.CPU.PC, uint16(0))
	test.ExpectSuccess(t, gb.BootROM.Enabled())
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x3e)

	test.ExpectSuccess(t, gb.RunUntil(5))
	test.ExpectFailure(t, gb.BootROM.Enabled())
	test.ExpectEquality(t, gb.Mem.Read(0x0000), 0x00)

	_, err := hardware.NewGameBoy(nopCartridge(t), make([]uint8, 10), gb.Prefs)
	test.ExpectFailure(t, err)
}

func TestEchoRAM(t *testing.T) {
	gb := newGameBoy(t, nil, false)

	gb.Mem.Write(0xc010, 0x42)
	test.ExpectEquality(t, gb.Mem.Read(0xe010), 0x42)

	gb.Mem.Write(0xe020, 0x24)
	test.ExpectEquality(t, gb.Mem.Read(0xc020), 0x24)

	// the echo RAM is smaller than the work RAM
	gb.Mem.Write(0xde00, 0x99)
	test.ExpectEquality(t, gb.Mem.Read(0xfe00), 0x00)
}

func TestUnmapped(t *testing.T) {
	gb := newGameBoy(t, nil, false)

	// cartridge RAM is not present in a MBC0 cartridge
	test.ExpectEquality(t, gb.Mem.Read(0xa000), 0xff)

	// unused area between OAM and the IO registers
	test.ExpectEquality(t, gb.Mem.Read(0xfeb0), 0xff)
}

func TestRunUserInput(t *testing.T) {
	gb := newGameBoy(t, nil, false)

	gb.UserInput <- joypad.Event{Key: joypad.A, Pressed: true}

	err := gb.Run(func() (govern.State, error) {
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, gb.Joypad.Pressed(joypad.A))
	test.ExpectInequality(t, gb.CPU.IF&interrupts.Joypad.Mask(), 0)
	test.ExpectEquality(t, gb.Cycles(), uint64(clocks.CyclesPerLine))
}

func TestRunPaused(t *testing.T) {
	gb := newGameBoy(t, nil, false)

	states := []govern.State{govern.Paused, govern.Paused, govern.Running, govern.Ending}
	err := gb.Run(func() (govern.State, error) {
		s := states[0]
		states = states[1:]
		return s, nil
	})
	test.ExpectSuccess(t, err)

	// only the two running states advance the emulation
	test.ExpectEquality(t, gb.Cycles(), uint64(2*clocks.CyclesPerLine))
}

func TestRunForFrameCount(t *testing.T) {
	gb := newGameBoy(t, nil, false)

	var frames []int
	err := gb.RunForFrameCount(3, func(frame int) (govern.State, error) {
		frames = append(frames, frame)
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, frames[2], 3)
	test.ExpectEquality(t, gb.Cycles(), uint64(3*clocks.CyclesPerFrame))

	// the LCD is switched off so no frames have been completed
	test.ExpectEquality(t, gb.FrameCount(), 0)

	// ending early
	err = gb.RunForFrameCount(3, func(frame int) (govern.State, error) {
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gb.Cycles(), uint64(4*clocks.CyclesPerFrame))
}

func TestReset(t *testing.T) {
	gb := newGameBoy(t, nil, false)
	gb.Mem.Write(0xc000, 0x12)
	test.ExpectSuccess(t, gb.RunUntil(1000))

	gb.Reset()
	test.ExpectEquality(t, gb.Cycles(), uint64(0))
	test.ExpectEquality(t, gb.CPU.PC, uint16(0))
	test.ExpectEquality(t, gb.Mem.Read(0xc000), 0x00)
}
