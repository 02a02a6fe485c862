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

// Package limiter paces the emulation so that frames are produced at a fixed
// rate. The rate is normally the native refresh rate of the DMG but can be
// changed with SetLimit().
//
// A Limiter should be consulted once per frame, with CheckFrame(). The
// measured frame rate is updated by MeasureActual(), which is cheap enough to
// call every frame.
//
//	lmtr := limiter.NewLimiter()
//	for {
//		runFrame()
//		lmtr.CheckFrame()
//		lmtr.MeasureActual()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherdmg/hardware/clocks"
)

// MatchRefreshRate can be used with SetLimit() to indicate that the limiter
// should run at the native refresh rate.
const MatchRefreshRate float32 = -1.0

// Limiter is used to stall a frame loop.
type Limiter struct {
	// whether to wait each frame. if Active is false then CheckFrame() will
	// return immediately
	Active bool

	// the frame rate the limiter is aiming for
	IdealFPS atomic.Value // float32

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of
	// frames
	Nudge atomic.Int32

	// waiting on the ticker every frame is too fine grained at higher rates.
	// the pulse is stretched to cover pulseCtLimit frames
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limit will be set to the refresh rate of the DMG.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Millisecond * 1000),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetLimit changes the rate at which the Limiter waits. Values of zero or less
// are the same as MatchRefreshRate.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		fps = float32(clocks.FrameRate)
	}
	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It will block if the frame has
// been produced too quickly.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if !lmtr.Active {
		return
	}

	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseCtLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual updates the Measured field, at most once a second.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The Limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
