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

package playmode

import (
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// keyboard handles the keys that are not used by the joypad.
func (pl *playmode) keyboard(ev userinput.EventKeyboard) error {
	if !ev.Down || ev.Repeat {
		return nil
	}

	switch ev.Key {
	case "P":
		pl.setPause(pl.state != govern.Paused)
	case "F12":
		scale := pl.prefs.Scale.Get().(int)
		_, err := screenshot.SaveUnique(pl.gb.Cart.Title, pl.gb.LCD.CurrentImage(), pl.prefs.CurrentPalette(), scale)
		if err != nil {
			logger.Log(logger.Allow, "playmode", err.Error())
		}
	}

	return nil
}
