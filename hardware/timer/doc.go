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

// Package timer implements the DIV and TIMA timers of the DMG.
//
// Both timers are driven by a 16bit counter that advances by four on every
// machine cycle. DIV is the upper byte of the counter. TIMA is incremented on
// the falling edge of a bit of the counter selected by TAC, while the enable
// bit of TAC is set. When TIMA overflows it is reloaded from TMA and the
// TIMER interrupt is requested.
//
// Because TIMA is driven by a falling edge, writing to DIV or to TAC can
// cause TIMA to increment if the write causes the selected bit to change from
// one to zero.
package timer
