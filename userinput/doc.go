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

// Package userinput handles input from the real hardware that the user of the
// emulator is using to control the emulated console.
//
// It is a translation layer between a front end (the SDL window or the
// terminal) and the emulated joypad. Front ends send Event values; the
// Controllers type turns them into joypad events.
//
// Key names follow the names used by SDL. The terminal front end translates
// its input to the same names.
package userinput
