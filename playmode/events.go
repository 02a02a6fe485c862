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
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/govern"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/performance/limiter"
	"github.com/jetsetilly/gopherdmg/userinput"
)

// sentinel error returned when the user quits.
const quitEvent = "playmode: quit"

// how often the front end is serviced while the emulation is paused
const pausedService = 50 * time.Millisecond

func (pl *playmode) userInputHandler(ev userinput.Event) error {
	if pl.controllers.HandleUserInput(ev) {
		return curated.Errorf(quitEvent)
	}

	if pl.controllers.LastKeyHandled {
		return nil
	}

	if kb, ok := ev.(userinput.EventKeyboard); ok {
		return pl.keyboard(kb)
	}

	return nil
}

// eventHandler deals with all pending events without waiting.
func (pl *playmode) eventHandler() (govern.State, error) {
	for {
		select {
		case <-pl.intChan:
			return govern.Ending, curated.Errorf(quitEvent)

		case ev := <-pl.fe.UserInput():
			if err := pl.userInputHandler(ev); err != nil {
				return govern.Ending, err
			}

		default:
			return pl.state, nil
		}
	}
}

// pausedHandler waits for an event while the emulation is paused.
func (pl *playmode) pausedHandler() (govern.State, error) {
	pl.fe.Service()

	select {
	case <-pl.intChan:
		return govern.Ending, curated.Errorf(quitEvent)

	case ev := <-pl.fe.UserInput():
		if err := pl.userInputHandler(ev); err != nil {
			return govern.Ending, err
		}

	case <-time.After(pausedService):
	}

	return pl.state, nil
}

func (pl *playmode) setPause(pause bool) {
	if pause {
		pl.state = govern.Paused
		logger.Log(logger.Allow, "playmode", "paused")
		return
	}

	pl.state = govern.Running

	// the time spent paused must not be made up by the limiter
	pl.lmtr.SetLimit(limiter.MatchRefreshRate)
	logger.Log(logger.Allow, "playmode", "resumed")
}
