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

// Package addresses lists the memory map of the DMG. Ranges are described by a
// start address (inclusive) and an end address (exclusive). End addresses are
// of type int because some ranges end at the top of the 16bit address space.
package addresses

// Boot ROM. Shadows the start of the cartridge ROM until disabled.
const (
	BootROMStart = 0x0000
	BootROMEnd   = 0x0100
	BootROMSize  = BootROMEnd - BootROMStart
)

// Cartridge ROM and RAM.
const (
	CartROMStart = 0x0000
	CartROMEnd   = 0x8000
	CartROMSize  = CartROMEnd - CartROMStart

	CartRAMStart = 0xa000
	CartRAMEnd   = 0xc000
	CartRAMSize  = CartRAMEnd - CartRAMStart
)

// Video RAM and the sprite attribute table (OAM).
const (
	VideoRAMStart = 0x8000
	VideoRAMEnd   = 0xa000
	VideoRAMSize  = VideoRAMEnd - VideoRAMStart

	OAMStart = 0xfe00
	OAMEnd   = 0xfea0
	OAMSize  = OAMEnd - OAMStart
)

// Work RAM and its mirror, the echo RAM. The echo RAM is smaller than the work
// RAM that it mirrors.
const (
	WorkRAMStart = 0xc000
	WorkRAMEnd   = 0xe000
	WorkRAMSize  = WorkRAMEnd - WorkRAMStart

	EchoRAMStart = 0xe000
	EchoRAMEnd   = 0xfe00
	EchoRAMSize  = EchoRAMEnd - EchoRAMStart
)

// High RAM. Owned by the CPU.
const (
	HighRAMStart = 0xff80
	HighRAMEnd   = 0xffff
	HighRAMSize  = HighRAMEnd - HighRAMStart
)

// Registers of the peripherals are in the page starting at RegsStart. The LDH
// instructions address this page with an 8bit offset.
const (
	RegsStart = 0xff00
	RegsEnd   = 0xff80
)

// Register addresses.
const (
	P1 = 0xff00

	SB = 0xff01
	SC = 0xff02

	DIV  = 0xff04
	TIMA = 0xff05
	TMA  = 0xff06
	TAC  = 0xff07

	IF = 0xff0f

	LCDC = 0xff40
	STAT = 0xff41
	SCY  = 0xff42
	SCX  = 0xff43
	LY   = 0xff44
	LYC  = 0xff45
	DMA  = 0xff46
	BGP  = 0xff47
	OBP0 = 0xff48
	OBP1 = 0xff49
	WY   = 0xff4a
	WX   = 0xff4b

	BootROMDisable = 0xff50

	IE = 0xffff
)

// The range of LCD controller registers.
const (
	LCDRegsStart = LCDC
	LCDRegsEnd   = WX + 1
)

// Tile maps and tile sources used by the LCD controller.
const (
	TileMap0 = 0x9800
	TileMap1 = 0x9c00

	// tile numbers index from TileSource1 as unsigned values and from
	// TileSource0 as signed values centred on 0x9000
	TileSource0 = 0x8800
	TileSource1 = 0x8000
)

// Cartridge header fields.
const (
	HeaderTitle       = 0x0134
	HeaderTitleEnd    = 0x0144
	HeaderCartType    = 0x0147
	HeaderROMSize     = 0x0148
	HeaderRAMSize     = 0x0149
	HeaderEntry       = 0x0100
	HeaderChecksumEnd = 0x014d
)

// Symbols maps register addresses to their canonical names.
var Symbols = map[uint16]string{
	P1:             "P1",
	SB:             "SB",
	SC:             "SC",
	DIV:            "DIV",
	TIMA:           "TIMA",
	TMA:            "TMA",
	TAC:            "TAC",
	IF:             "IF",
	LCDC:           "LCDC",
	STAT:           "STAT",
	SCY:            "SCY",
	SCX:            "SCX",
	LY:             "LY",
	LYC:            "LYC",
	DMA:            "DMA",
	BGP:            "BGP",
	OBP0:           "OBP0",
	OBP1:           "OBP1",
	WY:             "WY",
	WX:             "WX",
	BootROMDisable: "BOOT",
	IE:             "IE",
}
