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

package userinput

import (
	"github.com/jetsetilly/gopherdmg/hardware/joypad"
)

// the name of the key that ends the emulation
const quitKey = "Q"

// KeyMap maps key names to joypad keys.
var KeyMap = map[string]joypad.Key{
	"Right": joypad.Right,
	"Left":  joypad.Left,
	"Up":    joypad.Up,
	"Down":  joypad.Down,
	"A":     joypad.A,
	"B":     joypad.B,
	"Space": joypad.Select,
	"S":     joypad.Start,
}

// Controllers turns user input events into joypad events.
type Controllers struct {
	// joypad events are sent to this channel
	input chan<- joypad.Event

	// whether the last event was consumed by the joypad. events that are
	// not consumed can be handled by the front end
	LastKeyHandled bool
}

// NewControllers is the preferred method of initialisation for the Controllers
// type. The input channel will usually be the UserInput channel of a GameBoy.
func NewControllers(input chan<- joypad.Event) *Controllers {
	return &Controllers{input: input}
}

func (c *Controllers) keyboard(ev EventKeyboard) bool {
	c.LastKeyHandled = false

	if ev.Repeat || ev.Mod != KeyModNone {
		return false
	}

	if ev.Down && ev.Key == quitKey {
		c.LastKeyHandled = true
		return true
	}

	k, ok := KeyMap[ev.Key]
	if !ok {
		return false
	}

	// the channel is drained every scanline. if it is ever full the event
	// is dropped rather than stall the front end
	select {
	case c.input <- joypad.Event{Key: k, Pressed: ev.Down}:
		c.LastKeyHandled = true
	default:
	}

	return false
}

// HandleUserInput deciphers the Event and forwards the input to the joypad.
// Returns true if the event is a request to quit.
func (c *Controllers) HandleUserInput(ev Event) bool {
	switch ev := ev.(type) {
	case EventQuit:
		c.LastKeyHandled = true
		return true
	case EventKeyboard:
		return c.keyboard(ev)
	}
	c.LastKeyHandled = false
	return false
}
