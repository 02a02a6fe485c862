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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("display.scale::4")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::4")

	// whitespace around keys and values is removed
	prefs.PushCommandLineStack("  display.scale ::  4 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::4")

	// unused entries are returned in key order
	prefs.PushCommandLineStack("gameboy.postboot::false; display.palette::grey")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.palette::grey; gameboy.postboot::false")

	// entries without a separator are ignored
	prefs.PushCommandLineStack("display.scale;display.palette::grey")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.palette::grey")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("display.scale::4; display.palette::grey")

	ok, v := prefs.GetCommandLinePref("display.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "4")

	// entries can only be used once
	ok, _ = prefs.GetCommandLinePref("display.scale")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("gameboy.postboot")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.palette::grey")
}

func TestCommandLineNesting(t *testing.T) {
	prefs.PushCommandLineStack("display.scale::2")
	prefs.PushCommandLineStack("display.scale::5")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("display.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "5")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.scale::2")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineOverridesDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	var scale prefs.Int
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("display.scale", &scale))
	test.DemandSuccess(t, scale.Set(3))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("display.scale::6")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 6)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// the overridden value is not saved unless Save() is called
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 3)
}
