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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestLookupPalette(t *testing.T) {
	p, err := gui.LookupPalette(" Grey ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, gui.Palettes["grey"])
	test.ExpectEquality(t, p.String(), "grey")

	_, err = gui.LookupPalette("purple")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gui.UnknownPalette))

	test.ExpectEquality(t, len(gui.PaletteNames()), 2)
	test.ExpectEquality(t, gui.PaletteNames()[0], "green")
}

func TestRGBA(t *testing.T) {
	// pixel zero is colour 3, pixel one is colour 2, pixel two is colour 1
	l := lcd.NewLineBuilder(lcd.Width).SetBytes(0, 0b011, 0b101).Build()
	frame := lcd.NewImageBuilder(lcd.Width, lcd.Height).SetLine(1, l).Build()

	p := gui.Palettes["grey"]
	img := p.RGBA(frame)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.Height)

	test.ExpectEquality(t, img.RGBAAt(0, 0), p[0])
	test.ExpectEquality(t, img.RGBAAt(0, 1), p[3])
	test.ExpectEquality(t, img.RGBAAt(1, 1), p[2])
	test.ExpectEquality(t, img.RGBAAt(2, 1), p[1])
	test.ExpectEquality(t, img.RGBAAt(3, 1), p[0])
}
