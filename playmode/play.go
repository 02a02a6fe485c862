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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/jetsetilly/gopherdmg/userinput"
)

type playmode struct {
	gb          *hardware.GameBoy
	fe          gui.Frontend
	prefs       *gui.Preferences
	controllers *userinput.Controllers
	lmtr        *limiter.Limiter

	state govern.State

	// the cycle at which the next frame begins
	nextFrame uint64

	intChan chan os.Signal
}

// Play sets the emulation running with the front end. Play returns when the
// user quits or when the emulation fails.
//
// The front end should already be registered as a frame renderer with the
// GameBoy's LCD controller.
func Play(gb *hardware.GameBoy, fe gui.Frontend, prefs *gui.Preferences) error {
	pl := &playmode{
		gb:          gb,
		fe:          fe,
		prefs:       prefs,
		controllers: userinput.NewControllers(gb.UserInput),
		lmtr:        limiter.NewLimiter(),
		state:       govern.Running,
		nextFrame:   gb.Cycles() + clocks.CyclesPerFrame,
		intChan:     make(chan os.Signal, 1),
	}
	defer pl.lmtr.Stop()

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	logger.Logf(logger.Allow, "playmode", "playing %s", gb.Cart)

	err := gb.Run(pl.continueCheck)
	if err != nil {
		if curated.Is(err, quitEvent) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// continueCheck is called by the GameBoy after every scanline.
func (pl *playmode) continueCheck() (govern.State, error) {
	if pl.state == govern.Paused {
		return pl.pausedHandler()
	}

	if pl.gb.Cycles() < pl.nextFrame {
		return pl.state, nil
	}
	pl.nextFrame += clocks.CyclesPerFrame

	pl.lmtr.CheckFrame()
	pl.lmtr.MeasureActual()

	pl.fe.Service()
	return pl.eventHandler()
}
