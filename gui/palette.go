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

package gui

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// UnknownPalette is the error pattern returned when a palette name is not
// recognised.
const UnknownPalette = "gui: unknown palette (%s)"

// Palette maps the four shades of the LCD to real colours. Shade zero is the
// lightest.
type Palette [4]color.RGBA

// Palettes lists the available palettes by name.
var Palettes = map[string]Palette{
	"green": {
		{R: 0xe0, G: 0xf0, B: 0xe7, A: 0xff},
		{R: 0x8b, G: 0xa3, B: 0x94, A: 0xff},
		{R: 0x55, G: 0x64, B: 0x5a, A: 0xff},
		{R: 0x34, G: 0x3d, B: 0x37, A: 0xff},
	},
	"grey": {
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
		{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	},
}

// PaletteNames returns the names of the available palettes in alphabetical
// order.
func PaletteNames() []string {
	n := make([]string, 0, len(Palettes))
	for k := range Palettes {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// LookupPalette returns the palette with the name. Names are not case
// sensitive.
func LookupPalette(name string) (Palette, error) {
	p, ok := Palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, curated.Errorf(UnknownPalette, name)
	}
	return p, nil
}

func (p Palette) String() string {
	for k, v := range Palettes {
		if v == p {
			return k
		}
	}
	return fmt.Sprintf("%v", [4]color.RGBA(p))
}

// Pixels writes the frame into the pixels slice, four bytes per pixel in RGBA
// order. The slice must be large enough for the frame.
func (p Palette) Pixels(frame *lcd.Image, pixels []byte) {
	i := 0
	for y := range frame.Height() {
		l := frame.Line(y)
		for x := range frame.Width() {
			c := p[l.Colour(x)]
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
			i += 4
		}
	}
}

// RGBA converts the frame to an image.RGBA.
func (p Palette) RGBA(frame *lcd.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	p.Pixels(frame, img.Pix)
	return img
}
