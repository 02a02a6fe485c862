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
	"sort"

	"github.com/jetsetilly/gopherdmg/bits"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
)

// the background and the window are both drawn from a map of 32x32 tiles
const (
	mapSize     = 32
	bgSize      = mapSize * 8
	tileBytes   = 16
	tileLines   = 8
	wxOffset    = 7
	spriteCount = 40
	spriteLimit = 10
)

// sprite attributes in OAM
const (
	spriteY     = 0
	spriteX     = 1
	spriteTile  = 2
	spriteFlags = 3
	spriteSize  = 4

	spriteYOffset = 16
	spriteXOffset = 8
)

// bits of the sprite flags
const (
	spritePalette  = 0x10
	spriteFlipH    = 0x20
	spriteFlipV    = 0x40
	spriteBehindBG = 0x80
)

func (lcd *LCD) readVRAM(address int) uint8 {
	return lcd.vram.Read(address - addresses.VideoRAMStart)
}

func (lcd *LCD) spriteAttr(index int, attr int) uint8 {
	return lcd.oam.Read(index*spriteSize + attr)
}

// tileRow returns the two bytes of tile data for one row of the tile at
// position col of row mapRow in the tile map. The bytes are reversed so that
// the lowest bit is the leftmost pixel.
func (lcd *LCD) tileRow(tileMap int, mapRow int, col int, row int) (msb uint8, lsb uint8) {
	tile := int(lcd.readVRAM(tileMap + mapRow*mapSize + col))

	base := addresses.TileSource1
	if !lcd.regs.test(LCDC, lcdcTileSource) {
		// tile numbers are signed when using the second tile source
		base = addresses.TileSource0
		tile = (tile + 128) & 0xff
	}

	addr := base + tile*tileBytes + 2*row
	lsb = lcd.readVRAM(addr)
	msb = lcd.readVRAM(addr + 1)

	return bits.Reverse8(msb), bits.Reverse8(lsb)
}

// mapLine returns the full 256 pixel line of the tile map at the given line.
func (lcd *LCD) mapLine(tileMap int, line int) Line {
	b := NewLineBuilder(bgSize)
	for col := 0; col < mapSize; col++ {
		msb, lsb := lcd.tileRow(tileMap, line/tileLines, col, line%tileLines)
		b.SetBytes(col, msb, lsb)
	}
	return b.Build()
}

func (lcd *LCD) computeLine(ly int) Line {
	bgp := lcd.regs[BGP]

	// background
	var line Line
	if lcd.regs.test(LCDC, lcdcBG) {
		tileMap := addresses.TileMap0
		if lcd.regs.test(LCDC, lcdcBGArea) {
			tileMap = addresses.TileMap1
		}
		y := (ly + int(lcd.regs[SCY])) % bgSize
		line = lcd.mapLine(tileMap, y).MapColors(bgp).ExtractWrapped(int(lcd.regs[SCX]), Width)
	} else {
		// a disabled background is colour zero mapped through the palette
		line = BlankLine(Width).MapColors(bgp)
	}

	// window. the clamp of WX to zero means the window can never be shifted
	// to the left of the screen
	wx := max(0, int(lcd.regs[WX])-wxOffset)
	if lcd.regs.test(LCDC, lcdcWin) && wx < Width && int(lcd.regs[WY]) <= ly {
		tileMap := addresses.TileMap0
		if lcd.regs.test(LCDC, lcdcWinArea) {
			tileMap = addresses.TileMap1
		}
		win := lcd.mapLine(tileMap, lcd.winY).MapColors(bgp).ExtractWrapped(-wx, Width)
		lcd.winY++
		line = line.Join(win, wx)
	}

	// sprites
	if lcd.regs.test(LCDC, lcdcOBJ) {
		behind, front := lcd.spriteLayers(ly)
		line = line.BelowWithOpacity(behind, line.Opacity().Not().And(behind.Opacity()))
		line = line.Below(front)
	}

	return line
}

func (lcd *LCD) spriteHeight() int {
	if lcd.regs.test(LCDC, lcdcOBJSize) {
		return tileLines * 2
	}
	return tileLines
}

// spritesOnLine returns the indices of the sprites that are visible on the
// line, in order of priority. A maximum of ten sprites are selected, in the
// order in which they appear in OAM. They are then sorted by X coordinate,
// with the sprite with the lower index taking priority if the X coordinates
// are the same.
func (lcd *LCD) spritesOnLine(ly int) []int {
	height := lcd.spriteHeight()

	found := make([]int, 0, spriteLimit)
	for i := 0; i < spriteCount && len(found) < spriteLimit; i++ {
		y := int(lcd.spriteAttr(i, spriteY)) - spriteYOffset
		if ly >= y && ly < y+height {
			found = append(found, int(lcd.spriteAttr(i, spriteX))<<8|i)
		}
	}

	sort.Ints(found)
	for i := range found {
		found[i] &= 0xff
	}

	return found
}

// spriteLine returns the line of pixels for the sprite.
func (lcd *LCD) spriteLine(index int, ly int) Line {
	height := lcd.spriteHeight()
	flags := lcd.spriteAttr(index, spriteFlags)

	row := ly - (int(lcd.spriteAttr(index, spriteY)) - spriteYOffset)
	if flags&spriteFlipV != 0 {
		row = height - 1 - row
	}

	tile := int(lcd.spriteAttr(index, spriteTile))
	if height > tileLines {
		// the lowest bit of the tile number is ignored for tall sprites
		tile &= 0xfe
	}

	addr := addresses.TileSource1 + tile*tileBytes + 2*row
	lsb := lcd.readVRAM(addr)
	msb := lcd.readVRAM(addr + 1)
	if flags&spriteFlipH == 0 {
		lsb = bits.Reverse8(lsb)
		msb = bits.Reverse8(msb)
	}

	palette := lcd.regs[OBP0]
	if flags&spritePalette != 0 {
		palette = lcd.regs[OBP1]
	}

	// the sprite is built at pixel 64 and then shifted into place, so that
	// sprites partially off the left of the screen are clipped
	const buildAt = 8
	x := int(lcd.spriteAttr(index, spriteX)) - spriteXOffset
	return NewLineBuilder(Width).SetBytes(buildAt, msb, lsb).Build().MapColors(palette).Shift(x - buildAt*8)
}

// spriteLayers returns the two sprite layers for the line. The first layer is
// drawn behind the background and the second is drawn in front.
func (lcd *LCD) spriteLayers(ly int) (Line, Line) {
	behind := BlankLine(Width)
	front := BlankLine(Width)

	sprites := lcd.spritesOnLine(ly)

	// sprites with the lowest priority are drawn first
	for i := len(sprites) - 1; i >= 0; i-- {
		s := sprites[i]
		l := lcd.spriteLine(s, ly)
		if lcd.spriteAttr(s, spriteFlags)&spriteBehindBG != 0 {
			behind = behind.Below(l)
		} else {
			front = front.Below(l)
		}
	}

	return behind, front
}
