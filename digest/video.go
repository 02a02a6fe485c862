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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/lcd"
)

// VideoDigest is the error pattern for problems while hashing a frame.
const VideoDigest = "video digest: %v"

// Video is an implementation of the lcd.FrameRenderer interface that keeps a
// running SHA-1 hash of every frame.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo initialises a new instance of Video. The instance must be
// registered with lcd.AddFrameRenderer() before it receives any frames.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+lcd.Width*lcd.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames hashed since the last reset.
func (dig *Video) Frames() int {
	return dig.frames
}

// NewFrame implements the lcd.FrameRenderer interface.
func (dig *Video) NewFrame(frame *lcd.Image) error {
	if frame.Width() != lcd.Width || frame.Height() != lcd.Height {
		return curated.Errorf(VideoDigest, fmt.Sprintf("unexpected frame size (%dx%d)", frame.Width(), frame.Height()))
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	n := copy(dig.pixels, dig.digest[:])

	for y := range lcd.Height {
		for x := range lcd.Width {
			dig.pixels[n] = byte(frame.Get(x, y))
			n++
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
