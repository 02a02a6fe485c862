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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/hardware"
)

// sentinal error returned by Run() loop.
const timedOut = "performance: timed out"

// the length of time the emulation runs before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied GameBoy.
//
// Emulation will run for the specified duration, after a short lead time, and
// will create a cpu, memory profile, a trace (or a combination of those) as
// defined by the Profile argument.
func Check(output io.Writer, profile Profile, gb *hardware.GameBoy, duration time.Duration) error {
	return check(output, profile, gb, leadTime, duration)
}

func check(output io.Writer, profile Profile, gb *hardware.GameBoy, lead time.Duration, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive")
	}

	// get starting frame number
	startFrame := gb.FrameCount()

	runner := func() error {
		// signals false when the lead time has elapsed and measurement should
		// begin. signals true when the measurement has finished
		timerChan := make(chan bool, 1)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		// the continue check is called once per scanline, which is
		// infrequent enough that the timer channel can be checked every time
		return gb.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, curated.Errorf(timedOut)
				}
				startFrame = gb.FrameCount()
			default:
			}
			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err := RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numFrames := gb.FrameCount() - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
