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

// Package playmode runs the emulation for the user to play. It connects a
// front end, implementing gui.Frontend, to a GameBoy instance and paces the
// emulation to the refresh rate of the DMG.
//
// As well as the joypad keys, playmode responds to the following keys:
//
//	P	pause and resume the emulation
//	F12	save a screenshot
//	Q	quit
//
// The emulation also ends when the front end sends a quit event (the window
// was closed) or when an interrupt signal is received.
package playmode
