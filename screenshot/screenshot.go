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

// Package screenshot saves frames from the LCD as PNG files.
package screenshot

import (
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/gui"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/paths"
)

// the sub-directory of the resource path in which screenshots are saved
const screenshotPath = "screenshots"

// Scale converts the frame to an image using the palette. Each LCD pixel
// becomes a square of scale by scale pixels. Values of scale less than one
// are treated as one.
func Scale(frame *lcd.Image, pal gui.Palette, scale int) *image.RGBA {
	src := pal.RGBA(frame)
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the scaled frame as a PNG image.
func Encode(w io.Writer, frame *lcd.Image, pal gui.Palette, scale int) error {
	err := png.Encode(w, Scale(frame, pal, scale))
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Save writes the scaled frame to the named file.
func Save(filename string, frame *lcd.Image, pal gui.Palette, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	err = Encode(f, frame, pal, scale)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved to %s", filename)

	return nil
}

// SaveUnique saves the frame to a new file in the screenshots directory of
// the resource path. The title, usually the cartridge title, forms part of
// the filename. Returns the name of the file.
func SaveUnique(title string, frame *lcd.Image, pal gui.Palette, scale int) (string, error) {
	pth, err := paths.ResourcePath(screenshotPath, paths.UniqueFilename("screenshot", title)+".png")
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}
	return pth, Save(pth, frame, pal, scale)
}
