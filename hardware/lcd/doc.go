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

// Package lcd implements the LCD controller of the DMG.
//
// The controller owns the video RAM, the sprite attribute table (OAM) and the
// LCD registers. It is also a clocked component. While the LCD is on, each line
// of the frame passes through three modes: mode 2 (OAM search, 20 cycles),
// mode 3 (pixel transfer, 43 cycles) and mode 0 (horizontal blank, 51
// cycles). After the 144 visible lines the controller stays in mode 1
// (vertical blank) for the time of another ten lines. A frame is therefore
// 17556 cycles long.
//
// Each line is rendered in full at the start of mode 3, using the bit plane
// operations of the Line type. The background and the window are rendered from
// the tile maps, after which the sprites are composed. Sprites that have the
// priority bit set only show where the background has colour zero.
//
// A frame is published at the start of the vertical blank. The most recently
// published frame is available through CurrentImage(), and it is also sent to
// every attached FrameRenderer.
//
// OAM DMA copies 160 bytes to the sprite attribute table at the rate of one
// byte per cycle.
package lcd
