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

// Package gui contains the types shared by the front ends of the emulator.
//
// A front end presents the frames produced by the LCD controller to the user
// and collects input from the user. The sdl sub-package opens a window and
// the terminal package draws to a text terminal. Both implement the Frontend
// interface and are driven by the playmode package.
//
// Frames are converted to RGBA images with a Palette. The choice of palette
// and the scaling of the window are preferences, managed by the Preferences
// type.
package gui
