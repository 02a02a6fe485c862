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

// Package clocks defines the constant values that define the speed of the main
// clock in the DMG, and the interface implemented by every component that is
// driven by it.
//
// All values are expressed in machine cycles. One machine cycle is four ticks
// of the 4.194304MHz crystal.
package clocks

// Crystal is the frequency of the crystal oscillator in Hz.
const Crystal = 1 << 22

// CyclesPerSecond is the number of machine cycles in one second.
const CyclesPerSecond = Crystal / 4

// Values that define the timing of the LCD controller.
const (
	CyclesPerLine  = 114
	LinesPerFrame  = 154
	VisibleLines   = 144
	CyclesPerFrame = CyclesPerLine * LinesPerFrame
)

// FrameRate is the number of frames displayed each second. Approximately
// 59.73Hz.
const FrameRate = float64(CyclesPerSecond) / CyclesPerFrame

// Clocked is implemented by components that are advanced by the main clock.
// Cycle() is called exactly once for every machine cycle, with strictly
// increasing values of cycle.
type Clocked interface {
	Cycle(cycle uint64) error
}
