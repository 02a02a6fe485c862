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

package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopherdmg/terminal/easyterm"
)

// the upper half block character. the foreground colour is the upper pixel
// and the background colour is the lower pixel
const halfBlock = "▀"

// fit returns the size of the image that fits in a terminal of cols by rows
// characters, while keeping the aspect ratio of the source. The height is in
// pixels, two pixels to a character row.
func fit(src image.Rectangle, cols, rows int) image.Rectangle {
	w := src.Dx()
	h := src.Dy()

	if cols < 1 || rows < 1 {
		return image.Rectangle{}
	}

	if w > cols {
		h = h * cols / w
		w = cols
	}
	if h > rows*2 {
		w = w * rows * 2 / h
		h = rows * 2
	}

	return image.Rect(0, 0, w, h)
}

// render the image as a string of half block characters with 24-bit colour
// escape sequences. the image is scaled to fit a terminal of cols by rows
// characters.
func render(img *image.RGBA, cols, rows int) string {
	dst := fit(img.Bounds(), cols, rows)
	if dst.Empty() {
		return ""
	}

	if dst != img.Bounds() {
		scaled := image.NewRGBA(dst)
		draw.ApproxBiLinear.Scale(scaled, dst, img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	s := strings.Builder{}
	s.WriteString(easyterm.CursorHome)

	for y := 0; y < dst.Dy(); y += 2 {
		var fg, bg color.RGBA
		first := true

		for x := 0; x < dst.Dx(); x++ {
			upper := img.RGBAAt(x, y)
			lower := color.RGBA{}
			if y+1 < dst.Dy() {
				lower = img.RGBAAt(x, y+1)
			}

			// only change the colours when they differ from the previous
			// character
			if first || upper != fg {
				fmt.Fprintf(&s, "\x1b[38;2;%d;%d;%dm", upper.R, upper.G, upper.B)
				fg = upper
			}
			if first || lower != bg {
				fmt.Fprintf(&s, "\x1b[48;2;%d;%d;%dm", lower.R, lower.G, lower.B)
				bg = lower
			}
			first = false

			s.WriteString(halfBlock)
		}

		s.WriteString(easyterm.ResetColours)
		s.WriteString("\r\n")
	}

	return s.String()
}
