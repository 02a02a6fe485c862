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

package screenshot_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/screenshot"
	"github.com/jetsetilly/gopherdmg/test"
)

func dottedFrame() *lcd.Image {
	l := lcd.NewLineBuilder(lcd.Width).SetBytes(0, 0x01, 0x01).Build()
	return lcd.NewImageBuilder(lcd.Width, lcd.Height).SetLine(0, l).Build()
}

func TestScale(t *testing.T) {
	pal := gui.Palettes["grey"]

	img := screenshot.Scale(dottedFrame(), pal, 0)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width)

	img = screenshot.Scale(dottedFrame(), pal, 3)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width*3)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.Height*3)

	// the dot at the top left corner is three pixels square
	for y := range 3 {
		for x := range 3 {
			test.ExpectEquality(t, img.RGBAAt(x, y), pal[3])
		}
	}
	test.ExpectEquality(t, img.RGBAAt(3, 0), pal[0])
	test.ExpectEquality(t, img.RGBAAt(0, 3), pal[0])
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, screenshot.Encode(&b, dottedFrame(), gui.Palettes["green"], 2))

	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width*2)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.Height*2)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.png")
	test.ExpectSuccess(t, screenshot.Save(fn, dottedFrame(), gui.Palettes["green"], 1))

	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, screenshot.Save(filepath.Join(t.TempDir(), "missing", "test.png"), dottedFrame(), gui.Palettes["green"], 1))
}

func TestSaveUnique(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherdmg", 0700))

	fn, err := screenshot.SaveUnique("TETRIS", dottedFrame(), gui.Palettes["green"], 1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(filepath.Base(fn), "screenshot_TETRIS_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".png"))

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}
