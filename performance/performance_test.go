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
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu, Trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ProfileNone.String(), "NONE")
}

func TestCalcFPS(t *testing.T) {
	frameRate := clocks.FrameRate
	fps, accuracy := CalcFPS(int(frameRate*10), 10)
	test.ExpectEquality(t, fps > clocks.FrameRate-0.1, true)
	test.ExpectEquality(t, accuracy > 99.0 && accuracy <= 100.0, true)

	fps, accuracy = CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := RunProfiler(ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)

	_, err = os.Stat("test_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherdmg", 0700))

	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	cart, err := cartridge.NewCartridge(make([]uint8, addresses.CartROMSize))
	test.DemandSuccess(t, err)

	gb, err := hardware.NewGameBoy(cart, nil, prefs)
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	err = check(out, ProfileNone, gb, 10*time.Millisecond, 200*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out.String(), "fps"), true)
	test.ExpectEquality(t, gb.Cycles() > 0, true)

	err = Check(out, ProfileNone, gb, 0)
	test.ExpectFailure(t, err)
}
