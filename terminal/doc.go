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

// Package terminal implements a front end that draws the LCD to a text
// terminal supporting 24-bit colour.
//
// Each character cell shows two LCD pixels, one above the other, by drawing
// the upper half block character with the foreground colour set to the upper
// pixel and the background colour set to the lower pixel. If the terminal is
// too small for the full frame then the frame is scaled to fit.
//
// Terminals do not report when a key is released. A key is considered held
// while the terminal keeps repeating it and is released shortly after the
// repeats stop.
package terminal
