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

package terminal

import (
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/terminal/easyterm"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// the capacity of the user input channel
const userInputQueue = 16

// a key is released if it has not been repeated for this long. the delay
// before a terminal starts repeating a held key is usually longer than the
// interval between repeats, so the first release is given longer
const (
	keyFirstRelease = 500 * time.Millisecond
	keyRelease      = 100 * time.Millisecond
)

// terminals are slow compared to the LCD so not every frame is drawn
const frameSkip = 2

// Terminal is an implementation of the gui.Frontend interface.
type Terminal struct {
	easyterm.Terminal

	prefs *gui.Preferences

	userinput chan userinput.Event

	// timers that release held keys
	held   map[string]*time.Timer
	heldMu sync.Mutex

	frames int

	// closed when input goroutine should end
	quit chan bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input and output files will usually be os.Stdin and os.Stdout.
func NewTerminal(prefs *gui.Preferences, input, output *os.File) (*Terminal, error) {
	trm := &Terminal{
		prefs:     prefs,
		userinput: make(chan userinput.Event, userInputQueue),
		held:      make(map[string]*time.Timer),
		quit:      make(chan bool),
	}

	err := trm.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	err = trm.RawMode()
	if err != nil {
		trm.CleanUp()
		return nil, curated.Errorf("terminal: %v", err)
	}

	trm.Print("%s%s", easyterm.HideCursor, easyterm.ClearScreen)

	go trm.readInput()

	geom := trm.Geometry()
	logger.Logf(logger.Allow, "terminal", "terminal size is %dx%d", geom.Cols, geom.Rows)

	return trm, nil
}

// readInput runs until the Terminal is destroyed.
func (trm *Terminal) readInput() {
	b := make([]byte, 32)
	for {
		n, err := trm.Read(b)
		select {
		case <-trm.quit:
			return
		default:
		}
		if err != nil {
			trm.send(userinput.EventQuit{})
			return
		}

		for _, k := range decodeKeys(b[:n]) {
			if k == keyInterrupt {
				trm.send(userinput.EventQuit{})
				continue
			}
			trm.press(k)
		}
	}
}

// press sends the key down event unless the key is already held. the key is
// released when it is no longer being repeated by the terminal.
func (trm *Terminal) press(key string) {
	trm.heldMu.Lock()
	defer trm.heldMu.Unlock()

	if t, ok := trm.held[key]; ok {
		t.Reset(keyRelease)
		return
	}

	trm.send(userinput.EventKeyboard{Key: key, Down: true})

	trm.held[key] = time.AfterFunc(keyFirstRelease, func() {
		trm.heldMu.Lock()
		defer trm.heldMu.Unlock()
		delete(trm.held, key)
		trm.send(userinput.EventKeyboard{Key: key, Down: false})
	})
}

// send the event without blocking. events are dropped if the channel is full
func (trm *Terminal) send(ev userinput.Event) {
	select {
	case trm.userinput <- ev:
	default:
	}
}

// NewFrame implements the lcd.FrameRenderer interface.
func (trm *Terminal) NewFrame(frame *lcd.Image) error {
	trm.frames++
	if trm.frames%frameSkip != 0 {
		return nil
	}

	geom := trm.Geometry()

	// one row is left for the cursor
	trm.Print("%s", render(trm.prefs.CurrentPalette().RGBA(frame), geom.Cols, geom.Rows-1))

	return nil
}

// UserInput implements the gui.Frontend interface.
func (trm *Terminal) UserInput() <-chan userinput.Event {
	return trm.userinput
}

// Service implements the gui.Frontend interface. Input is read by a separate
// goroutine so there is nothing to do.
func (trm *Terminal) Service() {
}

// Destroy implements the gui.Frontend interface.
func (trm *Terminal) Destroy() {
	close(trm.quit)

	trm.heldMu.Lock()
	for _, t := range trm.held {
		t.Stop()
	}
	trm.heldMu.Unlock()

	trm.Print("%s%s%s", easyterm.ResetColours, easyterm.ShowCursor, easyterm.ClearScreen+easyterm.CursorHome)
	trm.CleanUp()
}
