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

package gui

import (
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// Frontend is implemented by the types that present the emulation to the
// user.
type Frontend interface {
	lcd.FrameRenderer

	// Service checks the host for user input and forwards it to the
	// UserInput() channel. Service() should not loop or wait longer than
	// necessary. It will be called at least once per frame and repeatedly
	// while the emulation is paused.
	Service()

	// the channel on which user input is sent
	UserInput() <-chan userinput.Event

	// Destroy releases the resources used by the front end.
	Destroy()
}
