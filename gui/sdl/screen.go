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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// the number of bytes per pixel in the texture
const scrDepth = 4

type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the texture is the size of the LCD. the renderer stretches it to fit
	// the window
	texture *sdl.Texture

	// the pixels written to the texture on every update
	pixels []byte
}

// must be called from the main thread
func newScreen(title string, scale int) (*screen, error) {
	var err error

	scr := &screen{
		pixels: make([]byte, lcd.Width*lcd.Height*scrDepth),
	}

	// the correct size for the window is set by setScaling() below
	scr.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, lcd.Width, lcd.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.window.Destroy()
		return nil, err
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA32), sdl.TEXTUREACCESS_STREAMING, lcd.Width, lcd.Height)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		return nil, err
	}

	err = scr.setScaling(scale)
	if err != nil {
		scr.destroy()
		return nil, err
	}

	// show a blank screen until the first frame arrives
	err = scr.update()
	if err != nil {
		scr.destroy()
		return nil, err
	}

	return scr, nil
}

// must be called from the main thread
func (scr *screen) setScaling(scale int) error {
	scr.window.SetSize(int32(lcd.Width*scale), int32(lcd.Height*scale))
	return scr.renderer.SetLogicalSize(lcd.Width, lcd.Height)
}

// must be called from the main thread
func (scr *screen) update() error {
	err := scr.texture.Update(nil, scr.pixels, lcd.Width*scrDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// must be called from the main thread
func (scr *screen) destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
}
