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

// Package sdl implements a front end for the emulator using SDL. The LCD is
// shown in a window, scaled by the Scale preference, and keyboard events are
// forwarded to the emulation.
//
// SDL requires that most of its functions are called from the main thread.
// All SDL calls in this package are made through the mainthread package, so
// the program's main() function must run the emulation with mainthread.Run().
package sdl

import (
	"github.com/faiface/mainthread"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// the capacity of the user input channel
const userInputQueue = 16

// GUI is an implementation of the gui.Frontend interface.
type GUI struct {
	prefs *gui.Preferences

	// much of the sdl magic happens in the screen object
	scr *screen

	// events are forwarded to the emulation on this channel
	userinput chan userinput.Event
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// title is used in the window title.
func NewGUI(guiPrefs *gui.Preferences, title string) (*GUI, error) {
	gtv := &GUI{
		prefs:     guiPrefs,
		userinput: make(chan userinput.Event, userInputQueue),
	}

	var err error

	mainthread.Call(func() {
		err = sdl.Init(sdl.INIT_VIDEO)
		if err != nil {
			return
		}
		gtv.scr, err = newScreen(title, guiPrefs.Scale.Get().(int))
	})
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the window is resized whenever the preference changes
	guiPrefs.Scale.SetHookPost(func(v prefs.Value) error {
		var err error
		mainthread.Call(func() {
			err = gtv.scr.setScaling(v.(int))
		})
		return err
	})

	logger.Logf(logger.Allow, "sdl", "window opened at scale %d", guiPrefs.Scale.Get().(int))

	return gtv, nil
}

// NewFrame implements the lcd.FrameRenderer interface.
func (gtv *GUI) NewFrame(frame *lcd.Image) error {
	// converting the frame does not need to happen on the main thread
	gtv.prefs.CurrentPalette().Pixels(frame, gtv.scr.pixels)

	var err error
	mainthread.Call(func() {
		err = gtv.scr.update()
	})
	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	return nil
}

// UserInput implements the gui.Frontend interface.
func (gtv *GUI) UserInput() <-chan userinput.Event {
	return gtv.userinput
}

// Service implements the gui.Frontend interface.
func (gtv *GUI) Service() {
	mainthread.Call(gtv.guiLoop)
}

// Destroy implements the gui.Frontend interface.
func (gtv *GUI) Destroy() {
	gtv.prefs.Scale.SetHookPost(nil)
	mainthread.Call(func() {
		gtv.scr.destroy()
		sdl.Quit()
	})
}
