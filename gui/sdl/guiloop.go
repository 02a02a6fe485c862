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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherdmg/userinput"
)

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	}
	return userinput.KeyModNone
}

// send the event without blocking. events are dropped if the channel is full
func (gtv *GUI) send(ev userinput.Event) {
	select {
	case gtv.userinput <- ev:
	default:
	}
}

// guiLoop services all pending SDL events. must be called from the main
// thread.
func (gtv *GUI) guiLoop() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			gtv.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN, sdl.KEYUP:
				gtv.send(userinput.EventKeyboard{
					Key:    sdl.GetKeyName(ev.Keysym.Sym),
					Down:   ev.Type == sdl.KEYDOWN,
					Repeat: ev.Repeat != 0,
					Mod:    keyMod(ev.Keysym.Mod),
				})
			}

		default:
		}
	}
}
