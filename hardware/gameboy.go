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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/logger"
)

// TargetBehind is returned by RunUntil() if the target cycle has already been
// emulated.
const TargetBehind = "gameboy: target cycle (%d) is behind the current cycle (%d)"

// the capacity of the UserInput channel
const userInputQueue = 64

// GameBoy is the main container for the emulated components of the DMG.
type GameBoy struct {
	Prefs *preferences.Preferences

	Mem     *bus.Bus
	CPU     *cpu.CPU
	Timer   *timer.Timer
	LCD     *lcd.LCD
	Joypad  *joypad.Joypad
	Cart    *cartridge.Cartridge
	BootROM *memory.BootROMController

	// the work RAM is visible through two controllers. the second controller
	// is the echo RAM
	WorkRAM *memory.RAM

	// joypad events sent to this channel are applied to the joypad by the
	// Run() and RunForFrameCount() functions. sending should never block so
	// senders should use a select statement with a default case
	UserInput chan joypad.Event

	// clocked components in the order in which they are cycled
	clocked []clocks.Clocked

	// the number of cycles emulated so far. also the number of the next cycle
	// to be emulated
	cycles uint64

	// the error that stopped a cycle part way through. the emulation can not
	// continue until Reset() is called
	fault error
}

// NewGameBoy creates a new GameBoy with the cartridge inserted. The bootROM
// argument can be nil, in which case emulation begins with the boot ROM
// already disabled.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from disk.
func NewGameBoy(cart *cartridge.Cartridge, bootROM []uint8, prefs *preferences.Preferences) (*GameBoy, error) {
	if cart == nil {
		return nil, curated.Errorf("gameboy: no cartridge")
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("gameboy: %v", err)
		}
	}

	gb := &GameBoy{
		Prefs:     prefs,
		Mem:       bus.NewBus(),
		Cart:      cart,
		WorkRAM:   memory.NewRAM(addresses.WorkRAMSize),
		UserInput: make(chan joypad.Event, userInputQueue),
	}

	gb.BootROM, err = memory.NewBootROMController(cart, bootROM)
	if err != nil {
		return nil, err
	}

	gb.CPU = cpu.NewCPU(gb.Mem)
	gb.Timer = timer.NewTimer(gb.CPU)
	gb.LCD = lcd.NewLCD(gb.Mem, gb.CPU)
	gb.Joypad = joypad.NewJoypad(gb.CPU)

	// the CPU is attached first because it answers the IF register, which is
	// in the same page as the other peripheral registers
	components := []bus.Component{
		gb.CPU,
		gb.BootROM,
		gb.Timer,
		gb.LCD,
		gb.Joypad,
		memory.NewRAMController(gb.WorkRAM, addresses.WorkRAMStart, addresses.WorkRAMEnd),
		memory.NewRAMController(gb.WorkRAM, addresses.EchoRAMStart, addresses.EchoRAMEnd),
	}
	for _, c := range components {
		if err := gb.Mem.Attach(c); err != nil {
			return nil, curated.Errorf("gameboy: %v", err)
		}
	}

	gb.clocked = []clocks.Clocked{gb.Timer, gb.LCD, gb.CPU}

	gb.Reset()

	logger.Logf(logger.Allow, "gameboy", "cartridge inserted: %s", cart)

	return gb, nil
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s cycles=%d frames=%d", gb.Cart, gb.cycles, gb.FrameCount())
}

// Reset the emulated hardware to the power-on state. If the boot ROM is not
// enabled and the PostBoot preference is set then the CPU and the IO
// registers are initialised to the values they would have after the boot ROM
// has completed.
//
// The boot ROM is not re-enabled by a reset.
func (gb *GameBoy) Reset() {
	gb.cycles = 0
	gb.fault = nil
	gb.CPU.Reset()
	gb.Timer.Reset()
	gb.LCD.Reset()
	gb.Joypad.Reset()
	for i := 0; i < gb.WorkRAM.Size(); i++ {
		gb.WorkRAM.Write(i, 0)
	}

	if !gb.BootROM.Enabled() && gb.Prefs.PostBoot.Get().(bool) {
		gb.postBoot()
	}
}

// postBoot sets the values left in the CPU and in the IO registers by the boot
// ROM.
func (gb *GameBoy) postBoot() {
	gb.CPU.PostBoot()
	gb.Mem.Write(addresses.LCDC, 0x91)
	gb.Mem.Write(addresses.BGP, 0xfc)
	gb.Mem.Write(addresses.OBP0, 0xff)
	gb.Mem.Write(addresses.OBP1, 0xff)
	logger.Log(logger.Allow, "gameboy", "starting with post-boot register values")
}

// Cycles returns the number of cycles emulated so far.
func (gb *GameBoy) Cycles() uint64 {
	return gb.cycles
}

// FrameCount returns the number of frames completed by the LCD controller.
func (gb *GameBoy) FrameCount() int {
	return gb.LCD.Frames
}

// RunUntil runs the emulation until the target cycle has been reached. The
// emulation will have emulated every cycle up to but not including the
// target cycle.
//
// If a component fails then the cycle in which it failed is counted as
// emulated and the same error is returned by every subsequent call until the
// GameBoy is reset.
func (gb *GameBoy) RunUntil(target uint64) error {
	if gb.fault != nil {
		return gb.fault
	}

	if target < gb.cycles {
		return curated.Errorf(TargetBehind, target, gb.cycles)
	}

	for gb.cycles < target {
		for _, c := range gb.clocked {
			if err := c.Cycle(gb.cycles); err != nil {
				gb.cycles++
				gb.fault = err
				return err
			}
		}
		gb.cycles++
	}

	return nil
}

// handleUserInput applies all pending joypad events.
func (gb *GameBoy) handleUserInput() {
	for {
		select {
		case ev := <-gb.UserInput:
			gb.Joypad.HandleEvent(ev)
		default:
			return
		}
	}
}
