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
	"math"

	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/hardware/memory/bus"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Dimensions of the screen in pixels.
const (
	Width  = 160
	Height = 144
)

// duration of the modes in each visible line
const (
	mode2Cycles = 20
	mode3Cycles = 43
	mode0Cycles = 51
)

// the position in the frame at which the vertical blank starts
const vblankStart = clocks.VisibleLines * clocks.CyclesPerLine

// the value of nextNonIdle and lcdOnCycle while the LCD is off
const never = math.MaxUint64

// number of bytes copied by OAM DMA
const dmaLength = addresses.OAMSize

// FrameRenderer implementations are sent every frame published by the LCD
// controller.
type FrameRenderer interface {
	NewFrame(frame *Image) error
}

// LCD implements the LCD controller.
type LCD struct {
	mem *bus.Bus
	irq interrupts.Requester

	vram *memory.RAM
	oam  *memory.RAM
	regs registerFile

	renderers []FrameRenderer

	// the frame under construction and the most recently published frame
	builder *ImageBuilder
	frame   *Image

	// Frames is the number of frames published since the LCD was created
	Frames int

	// internal line counter of the window. only advances on lines where the
	// window is drawn
	winY int

	// the line currently being processed
	line int

	dmaActive  bool
	dmaCounter int

	// the cycle on which the LCD was last switched on and the next cycle,
	// relative to lcdOnCycle, that requires processing
	lcdOnCycle  uint64
	nextNonIdle uint64
}

// NewLCD is the preferred method of initialisation for the LCD type. The LCD
// must still be attached to the bus.
func NewLCD(mem *bus.Bus, irq interrupts.Requester) *LCD {
	lcd := &LCD{
		mem:  mem,
		irq:  irq,
		vram: memory.NewRAM(addresses.VideoRAMSize),
		oam:  memory.NewRAM(addresses.OAMSize),
	}
	lcd.Reset()
	return lcd
}

func (lcd *LCD) String() string {
	s := fmt.Sprintf("%s mode=%s", lcd.regs.String(), lcd.Mode())
	if lcd.dmaActive {
		s = fmt.Sprintf("%s DMA=%d", s, lcd.dmaCounter)
	}
	return s
}

// Reset the LCD controller to the power-on state. The LCD is off.
func (lcd *LCD) Reset() {
	lcd.regs = registerFile{}
	for i := 0; i < lcd.vram.Size(); i++ {
		lcd.vram.Write(i, 0)
	}
	for i := 0; i < lcd.oam.Size(); i++ {
		lcd.oam.Write(i, 0)
	}
	lcd.builder = nil
	lcd.frame = nil
	lcd.winY = 0
	lcd.line = 0
	lcd.dmaActive = false
	lcd.dmaCounter = 0
	lcd.lcdOnCycle = never
	lcd.nextNonIdle = never
}

// AddFrameRenderer adds a renderer to the list of renderers that are sent
// each published frame.
func (lcd *LCD) AddFrameRenderer(r FrameRenderer) {
	lcd.renderers = append(lcd.renderers, r)
}

// RemoveFrameRenderer removes a renderer previously added with
// AddFrameRenderer().
func (lcd *LCD) RemoveFrameRenderer(r FrameRenderer) {
	for i := range lcd.renderers {
		if lcd.renderers[i] == r {
			lcd.renderers = append(lcd.renderers[:i], lcd.renderers[i+1:]...)
			return
		}
	}
}

// CurrentImage returns the most recently published frame. Before the first
// frame is published a blank frame is returned.
func (lcd *LCD) CurrentImage() *Image {
	if lcd.frame == nil {
		return BlankImage(Width, Height)
	}
	return lcd.frame
}

// Mode returns the current mode of the controller.
func (lcd *LCD) Mode() Mode {
	return Mode(lcd.regs[STAT] & statMode)
}

// IsOn returns true if the LCD is switched on and running.
func (lcd *LCD) IsOn() bool {
	return lcd.nextNonIdle != never
}

// Register returns the current value of the register.
func (lcd *LCD) Register(r Register) uint8 {
	return lcd.regs[r]
}

// Read implements the bus.Component interface.
func (lcd *LCD) Read(address uint16) (uint8, bool) {
	switch {
	case address >= addresses.VideoRAMStart && address < addresses.VideoRAMEnd:
		return lcd.vram.Read(int(address) - addresses.VideoRAMStart), true
	case address >= addresses.OAMStart && address < addresses.OAMEnd:
		return lcd.oam.Read(int(address) - addresses.OAMStart), true
	case address >= addresses.LCDRegsStart && address < addresses.LCDRegsEnd:
		return lcd.regs[address-addresses.LCDRegsStart], true
	}
	return 0, false
}

// Write implements the bus.Component interface.
func (lcd *LCD) Write(address uint16, data uint8) {
	switch {
	case address >= addresses.VideoRAMStart && address < addresses.VideoRAMEnd:
		lcd.vram.Write(int(address)-addresses.VideoRAMStart, data)
	case address >= addresses.OAMStart && address < addresses.OAMEnd:
		lcd.oam.Write(int(address)-addresses.OAMStart, data)
	case address >= addresses.LCDRegsStart && address < addresses.LCDRegsEnd:
		lcd.writeRegister(Register(address-addresses.LCDRegsStart), data)
	}
}

func (lcd *LCD) writeRegister(r Register, data uint8) {
	switch r {
	case LCDC:
		lcd.regs[LCDC] = data
		if data&lcdcStatus == 0 {
			if lcd.nextNonIdle != never {
				logger.Log(logger.Allow, "lcd", "switched off")
			}
			lcd.changeMode(HBlank)
			lcd.changeLY(0)
			lcd.nextNonIdle = never
		}
	case STAT:
		lcd.regs[STAT] = data&^statReadOnly | lcd.regs[STAT]&statReadOnly
	case LY:
		// read only
	case LYC:
		lcd.changeLYC(data)
	case DMA:
		if !lcd.dmaActive {
			lcd.dmaActive = true
			lcd.dmaCounter = 0
		}
		lcd.regs[DMA] = data
	default:
		lcd.regs[r] = data
	}
}

// Cycle implements the clocks.Clocked interface.
func (lcd *LCD) Cycle(cycle uint64) error {
	if lcd.nextNonIdle == never && lcd.regs.test(LCDC, lcdcStatus) {
		lcd.lcdOnCycle = cycle
		lcd.nextNonIdle = 0
		logger.Logf(logger.Allow, "lcd", "switched on at cycle %d", cycle)
	}

	if lcd.dmaActive {
		lcd.stepDMA()
	}

	if lcd.nextNonIdle != never && cycle-lcd.lcdOnCycle == lcd.nextNonIdle {
		lcd.line = int((cycle - lcd.lcdOnCycle) % clocks.CyclesPerFrame / clocks.CyclesPerLine)
		return lcd.reallyCycle()
	}

	return nil
}

// stepDMA copies a single byte to OAM.
func (lcd *LCD) stepDMA() {
	src := uint16(lcd.regs[DMA])<<8 + uint16(lcd.dmaCounter)
	lcd.oam.Write(lcd.dmaCounter, lcd.mem.Read(src))
	lcd.dmaCounter++
	if lcd.dmaCounter >= dmaLength {
		lcd.dmaActive = false
		lcd.dmaCounter = 0
	}
}

func (lcd *LCD) reallyCycle() error {
	pos := lcd.nextNonIdle % clocks.CyclesPerFrame

	if pos >= vblankStart {
		lcd.nextNonIdle += clocks.CyclesPerLine
		if pos == vblankStart {
			lcd.changeMode(VBlank)
			lcd.winY = 0
			if err := lcd.publish(); err != nil {
				return err
			}
		}
		lcd.changeLY(uint8(lcd.line))
		return nil
	}

	if pos == 0 || lcd.builder == nil {
		lcd.builder = NewImageBuilder(Width, Height)
	}

	switch pos % clocks.CyclesPerLine {
	case 0:
		lcd.nextNonIdle += mode2Cycles
		lcd.changeLY(uint8(lcd.line))
		lcd.changeMode(OAMSearch)
	case mode2Cycles:
		lcd.nextNonIdle += mode3Cycles
		ly := int(lcd.regs[LY])
		lcd.builder.SetLine(ly, lcd.computeLine(ly))
		lcd.changeMode(PixelTransfer)
	case mode2Cycles + mode3Cycles:
		lcd.nextNonIdle += mode0Cycles
		lcd.changeMode(HBlank)
	}

	return nil
}

func (lcd *LCD) publish() error {
	lcd.frame = lcd.builder.Build()
	lcd.Frames++
	for _, r := range lcd.renderers {
		if err := r.NewFrame(lcd.frame); err != nil {
			return err
		}
	}
	return nil
}

func (lcd *LCD) changeMode(m Mode) {
	lcd.regs[STAT] = lcd.regs[STAT]&^statMode | uint8(m)

	switch m {
	case HBlank:
		if lcd.regs.test(STAT, statIntMode0) {
			lcd.irq.RequestInterrupt(interrupts.LCDStat)
		}
	case VBlank:
		if lcd.regs.test(STAT, statIntMode1) {
			lcd.irq.RequestInterrupt(interrupts.LCDStat)
		}
		lcd.irq.RequestInterrupt(interrupts.VBlank)
	case OAMSearch:
		if lcd.regs.test(STAT, statIntMode2) {
			lcd.irq.RequestInterrupt(interrupts.LCDStat)
		}
	}
}

func (lcd *LCD) changeLY(v uint8) {
	lcd.regs[LY] = v
	lcd.compareLY()
}

func (lcd *LCD) changeLYC(v uint8) {
	lcd.regs[LYC] = v
	lcd.compareLY()
}

// compareLY updates the coincidence bit of STAT and requests the LCD_STAT
// interrupt if LY and LYC are equal and the interrupt is enabled.
func (lcd *LCD) compareLY() {
	eq := lcd.regs[LY] == lcd.regs[LYC]
	lcd.regs.setBits(STAT, statLYCEqLY, eq)
	if eq && lcd.regs.test(STAT, statIntLYC) {
		lcd.irq.RequestInterrupt(interrupts.LCDStat)
	}
}
