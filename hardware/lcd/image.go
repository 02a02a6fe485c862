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

package lcd

import (
	"fmt"
)

// the largest allowed width and height of an image
const maxImageSize = 256

// Image is a complete frame, made of one Line for each row of pixels. An Image
// is immutable once built.
type Image struct {
	width  int
	height int
	lines  []Line
}

func checkImageSize(width, height int) {
	if width <= 0 || height <= 0 || width > maxImageSize || height > maxImageSize {
		panic(fmt.Sprintf("lcd: invalid image size (%dx%d)", width, height))
	}
}

// NewImage creates an image from the lines. There must be exactly height
// lines and every line must be width pixels long.
func NewImage(width, height int, lines []Line) *Image {
	checkImageSize(width, height)
	if len(lines) != height {
		panic(fmt.Sprintf("lcd: image of height %d cannot have %d lines", height, len(lines)))
	}
	for y, l := range lines {
		if l.Size() != width {
			panic(fmt.Sprintf("lcd: line %d of image is %d pixels wide (not %d)", y, l.Size(), width))
		}
	}

	img := &Image{
		width:  width,
		height: height,
		lines:  make([]Line, height),
	}
	copy(img.lines, lines)
	return img
}

// BlankImage returns an image in which every pixel is colour zero.
func BlankImage(width, height int) *Image {
	return NewImageBuilder(width, height).Build()
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.height
}

// Get returns the two bit colour of the pixel at x, y.
func (img *Image) Get(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("lcd: pixel (%d, %d) is outside of the image", x, y))
	}
	return img.lines[y].Colour(x)
}

// Line returns the line at row y.
func (img *Image) Line(y int) Line {
	return img.lines[y]
}

// Equal returns true if the images are the same size and every line is equal.
func (img *Image) Equal(o *Image) bool {
	if img.width != o.width || img.height != o.height {
		return false
	}
	for y := range img.lines {
		if !img.lines[y].Equal(o.lines[y]) {
			return false
		}
	}
	return true
}

// ImageBuilder is used to create an Image one line at a time.
type ImageBuilder struct {
	width  int
	height int
	lines  []Line
}

// NewImageBuilder creates a builder for an image. Lines that are never set
// are blank.
func NewImageBuilder(width, height int) *ImageBuilder {
	checkImageSize(width, height)
	b := &ImageBuilder{
		width:  width,
		height: height,
		lines:  make([]Line, height),
	}
	blank := BlankLine(width)
	for y := range b.lines {
		b.lines[y] = blank
	}
	return b
}

// SetLine sets the line at row y.
func (b *ImageBuilder) SetLine(y int, l Line) *ImageBuilder {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("lcd: line index (%d) outside of image", y))
	}
	if l.Size() != b.width {
		panic(fmt.Sprintf("lcd: line is %d pixels wide (not %d)", l.Size(), b.width))
	}
	b.lines[y] = l
	return b
}

// Build returns a new Image. The builder can continue to be used.
func (b *ImageBuilder) Build() *Image {
	return NewImage(b.width, b.height, b.lines)
}
