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

package regression

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/database"
	"github.com/jetsetilly/gopherdmg/digest"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
)

const videoEntryID = "video"

const (
	videoFieldCartName int = iota
	videoFieldBootROM
	videoFieldNumFrames
	videoFieldDigest
	videoFieldNotes
	numVideoFields
)

// VideoRegression is the simplest regression type. It runs the emulation for
// a fixed number of frames and records the digest of the video output.
type VideoRegression struct {
	CartFile  string
	BootROM   string
	NumFrames int
	Notes     string
	digest    string
}

// NewVideoRegression is the preferred method of initialisation for the
// VideoRegression type. The bootROM argument can be empty.
func NewVideoRegression(cartFile string, bootROM string, numFrames int, notes string) (*VideoRegression, error) {
	if numFrames <= 0 {
		return nil, curated.Errorf("regression: number of frames must be positive")
	}
	if strings.ContainsAny(cartFile+bootROM+notes, ",\n") {
		return nil, curated.Errorf("regression: filenames and notes cannot contain commas or newlines")
	}
	return &VideoRegression{
		CartFile:  cartFile,
		BootROM:   bootROM,
		NumFrames: numFrames,
		Notes:     notes,
	}, nil
}

func deserialiseVideoEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numVideoFields {
		return nil, curated.Errorf("video: wrong number of fields (%d)", len(fields))
	}

	reg := &VideoRegression{
		CartFile: fields[videoFieldCartName],
		BootROM:  fields[videoFieldBootROM],
		Notes:    fields[videoFieldNotes],
		digest:   fields[videoFieldDigest],
	}

	var err error

	reg.NumFrames, err = strconv.Atoi(fields[videoFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("video: invalid number of frames (%s)", fields[videoFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg *VideoRegression) ID() string {
	return videoEntryID
}

// String implements the database.Entry interface.
func (reg *VideoRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s frames=%d", videoEntryID, reg.CartFile, reg.NumFrames))
	if reg.BootROM != "" {
		s.WriteString(" [bootrom]")
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *VideoRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.CartFile,
		reg.BootROM,
		strconv.Itoa(reg.NumFrames),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *VideoRegression) CleanUp() error {
	return nil
}

func (reg *VideoRegression) regress(newRegression bool) (bool, string, error) {
	cart, err := cartridge.Load(reg.CartFile)
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}

	var bootROM []uint8
	if reg.BootROM != "" {
		bootROM, err = os.ReadFile(reg.BootROM)
		if err != nil {
			return false, "", curated.Errorf("video: %v", err)
		}
	}

	// regressions always use the default hardware preferences
	hwPrefs, err := preferences.NewPreferences()
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}
	hwPrefs.SetDefaults()

	gb, err := hardware.NewGameBoy(cart, bootROM, hwPrefs)
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}

	dig := digest.NewVideo()
	gb.LCD.AddFrameRenderer(dig)

	err = gb.RunForFrameCount(reg.NumFrames, nil)
	if err != nil {
		return false, "", curated.Errorf("video: %v", err)
	}

	if newRegression {
		reg.digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}
