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

package playmode_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/playmode"
	"github.com/jetsetilly/gopherdmg/test"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// frontend is a scripted implementation of gui.Frontend. the script function
// is called on every call to Service() with the number of calls so far
type frontend struct {
	events    chan userinput.Event
	script    func(n int, fe *frontend)
	services  int
	frames    int
	destroyed bool
}

func newFrontend(script func(n int, fe *frontend)) *frontend {
	return &frontend{
		events: make(chan userinput.Event, 10),
		script: script,
	}
}

func (fe *frontend) NewFrame(_ *lcd.Image) error {
	fe.frames++
	return nil
}

func (fe *frontend) Service() {
	fe.services++
	fe.script(fe.services, fe)
}

func (fe *frontend) UserInput() <-chan userinput.Event {
	return fe.events
}

func (fe *frontend) Destroy() {
	fe.destroyed = true
}

func (fe *frontend) key(key string, down bool) {
	fe.events <- userinput.EventKeyboard{Key: key, Down: down}
}

func newGameBoy(t *testing.T) (*hardware.GameBoy, *gui.Preferences) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherdmg", 0700))

	cart, err := cartridge.NewCartridge(make([]uint8, addresses.CartROMSize))
	test.DemandSuccess(t, err)

	hwPrefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	gb, err := hardware.NewGameBoy(cart, nil, hwPrefs)
	test.DemandSuccess(t, err)

	guiPrefs, err := gui.NewPreferences()
	test.DemandSuccess(t, err)

	return gb, guiPrefs
}

func TestQuit(t *testing.T) {
	gb, prefs := newGameBoy(t)

	fe := newFrontend(func(n int, fe *frontend) {
		if n == 3 {
			fe.events <- userinput.EventQuit{}
		}
	})
	gb.LCD.AddFrameRenderer(fe)

	test.ExpectSuccess(t, playmode.Play(gb, fe, prefs))
	test.ExpectEquality(t, fe.services, 3)
	test.ExpectEquality(t, gb.Cycles(), uint64(3*clocks.CyclesPerFrame))

	// the LCD is on after the post-boot initialisation
	test.ExpectEquality(t, fe.frames, 3)
}

func TestQuitKey(t *testing.T) {
	gb, prefs := newGameBoy(t)

	fe := newFrontend(func(n int, fe *frontend) {
		fe.key("Q", true)
	})

	test.ExpectSuccess(t, playmode.Play(gb, fe, prefs))
	test.ExpectEquality(t, fe.services, 1)
}

func TestJoypad(t *testing.T) {
	gb, prefs := newGameBoy(t)

	fe := newFrontend(func(n int, fe *frontend) {
		switch n {
		case 1:
			fe.key("Right", true)
			fe.key("S", true)
		case 2:
			fe.key("S", false)
		case 3:
			fe.events <- userinput.EventQuit{}
		}
	})

	test.ExpectSuccess(t, playmode.Play(gb, fe, prefs))
	test.ExpectEquality(t, gb.Joypad.Pressed(joypad.Right), true)
	test.ExpectEquality(t, gb.Joypad.Pressed(joypad.Start), false)
}

func TestPause(t *testing.T) {
	gb, prefs := newGameBoy(t)

	var pausedAt uint64

	fe := newFrontend(func(n int, fe *frontend) {
		switch n {
		case 1:
			fe.key("P", true)
			pausedAt = gb.Cycles()
		case 4:
			// no cycles have been emulated while paused
			test.ExpectEquality(t, gb.Cycles(), pausedAt)
			fe.key("P", true)
		case 5:
			fe.events <- userinput.EventQuit{}
		}
	})

	test.ExpectSuccess(t, playmode.Play(gb, fe, prefs))
	test.ExpectEquality(t, gb.Cycles(), pausedAt+clocks.CyclesPerFrame)
}
