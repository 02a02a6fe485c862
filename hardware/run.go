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

package hardware

import (
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
)

// Run sets the emulation running as quickly as possible. The emulation is run
// one scanline at a time and the continueCheck function is called after every
// scanline. Pending user input is applied before each scanline.
//
// The emulation continues until continueCheck() returns govern.Ending or
// govern.Initialising. While the returned state is govern.Paused the
// emulation does not advance but continueCheck() is called repeatedly, so
// continueCheck() should itself wait for an event when paused.
func (gb *GameBoy) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for !state.Finished() {
		switch state {
		case govern.Running:
			gb.handleUserInput()
			if err := gb.RunUntil(gb.cycles + clocks.CyclesPerLine); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("gameboy: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames. A
// frame is measured as the number of cycles in a frame and not as the number
// of frames completed by the LCD, which will not advance if the LCD is
// switched off.
//
// The continueCheck function is called after every frame with the number of
// frames run so far.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for frame := 1; frame <= numFrames && !state.Finished(); frame++ {
		gb.handleUserInput()

		err := gb.RunUntil(gb.cycles + clocks.CyclesPerFrame)
		if err != nil {
			return err
		}

		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
