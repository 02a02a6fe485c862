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

// Package bits contains the bit twiddling helpers used throughout the
// emulation, along with the Vector type. A Vector is an immutable, word backed
// sequence of bits that is used by the LCD package to represent the colour and
// opacity planes of a scanline.
//
// Functions in this package treat an invalid argument (a bit index outside of
// the value's width or a vector size that isn't a multiple of 32) as a
// programming error and will panic.
package bits
