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
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/prefs"
)

// the range of allowed display scales
const (
	minScale = 1
	maxScale = 8
)

// Preferences for the front ends.
type Preferences struct {
	dsk *prefs.Disk

	// the number of screen pixels for each LCD pixel, horizontally and
	// vertically. only used by the SDL front end
	Scale prefs.Int

	// name of the palette
	Palette prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < minScale || s > maxScale {
			return curated.Errorf("gui: display scale must be between %d and %d", minScale, maxScale)
		}
		return nil
	})
	p.Palette.SetHookPre(func(v prefs.Value) error {
		_, err := LookupPalette(v.(string))
		return err
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.palette", &p.Palette)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(3)
	_ = p.Palette.Set("green")
}

// CurrentPalette returns the Palette named by the Palette preference.
func (p *Preferences) CurrentPalette() Palette {
	pal, err := LookupPalette(p.Palette.String())
	if err != nil {
		return Palettes["green"]
	}
	return pal
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
